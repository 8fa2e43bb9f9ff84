package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/model"
)

// respondError maps the pipeline error taxonomy to HTTP responses: malformed
// and not-found references are client errors, upstream faults are gateway
// errors. Degradable generation failures never reach this point.
func respondError(c fiber.Ctx, err error) error {
	var resErr *model.ResolutionError
	if errors.As(err, &resErr) {
		switch resErr.Kind {
		case model.ResolutionMalformed:
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_REFERENCE",
				"Unable to parse the reference. Provide an ID, URL, or handle (e.g., @handle).")
		case model.ResolutionNotFound:
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND",
				"No channel matched the reference")
		default:
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
				"Reference resolution failed upstream")
		}
	}

	var acqErr *model.AcquisitionError
	if errors.As(err, &acqErr) {
		switch acqErr.Kind {
		case model.AcquisitionNotFound:
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND",
				"The requested channel or video does not exist")
		case model.AcquisitionNoVideos:
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NO_VIDEOS_FOUND",
				"No videos found for this channel")
		default:
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR",
				"Data acquisition failed upstream")
		}
	}

	var anErr *model.AnalysisError
	if errors.As(err, &anErr) {
		if anErr.Kind == model.AnalysisGenerationFailed {
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "GENERATION_FAILED",
				"Text generation failed upstream")
		}
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "EMPTY_INPUT",
			"Nothing to analyze")
	}

	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
		"Request failed")
}
