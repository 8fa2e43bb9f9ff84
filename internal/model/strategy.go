package model

import "time"

// ContentStrategy is the output of the strategy generation stage. QuickWins
// are deterministic and survive a generative failure; Strategy is empty and
// StrategyError set in that case.
type ContentStrategy struct {
	Strategy      string    `json:"strategy"`
	StrategyError string    `json:"strategy_error,omitempty"`
	QuickWins     []string  `json:"quick_wins"`
	GeneratedAt   time.Time `json:"generated_at"`
}
