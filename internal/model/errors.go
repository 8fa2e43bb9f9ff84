package model

import "fmt"

// ResolutionKind classifies identifier resolution failures.
type ResolutionKind string

const (
	ResolutionNotFound  ResolutionKind = "not_found"
	ResolutionMalformed ResolutionKind = "malformed"
	ResolutionUpstream  ResolutionKind = "upstream_error"
)

// ResolutionError is returned when a channel or video reference cannot be
// turned into a canonical ID.
type ResolutionError struct {
	Kind  ResolutionKind
	Ref   string
	Cause error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve %q: %s: %v", e.Ref, e.Kind, e.Cause)
	}
	return fmt.Sprintf("resolve %q: %s", e.Ref, e.Kind)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// AcquisitionKind classifies data acquisition failures.
type AcquisitionKind string

const (
	AcquisitionNotFound AcquisitionKind = "not_found"
	AcquisitionNoVideos AcquisitionKind = "no_videos_found"
	AcquisitionUpstream AcquisitionKind = "upstream_error"
)

// AcquisitionError is returned when fetching channel or video data fails
// fatally. Best-effort fetches (comments, transcripts) never produce one.
type AcquisitionError struct {
	Kind    AcquisitionKind
	Subject string
	Cause   error
}

func (e *AcquisitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("acquire %s: %s: %v", e.Subject, e.Kind, e.Cause)
	}
	return fmt.Sprintf("acquire %s: %s", e.Subject, e.Kind)
}

func (e *AcquisitionError) Unwrap() error { return e.Cause }

// AnalysisKind classifies analysis and strategy stage failures.
type AnalysisKind string

const (
	AnalysisEmptyInput       AnalysisKind = "empty_input"
	AnalysisGenerationFailed AnalysisKind = "generation_failed"
)

// AnalysisError is returned by the trend and strategy stages. A
// GenerationFailed error may accompany a partial result: the deterministic
// aggregates are still returned alongside it.
type AnalysisError struct {
	Kind  AnalysisKind
	Cause error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis: %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("analysis: %s", e.Kind)
}

func (e *AnalysisError) Unwrap() error { return e.Cause }
