package tui

import "github.com/retireplan/engine/internal/domain"

// ResultLoadedMsg carries a completed simulation run into the model.
type ResultLoadedMsg struct {
	Result *domain.PlanResult
}

// ErrorMsg carries a fatal load/simulation error into the model.
type ErrorMsg struct {
	Err error
}
