package interpreter

import "go.trai.ch/kmak/internal/core/domain"

// State is everything a parsed script defines. It is filled once by a
// Parser and only read afterwards.
type State struct {
	Variables *VariableTable
	Tasks     *TaskRegistry

	// open is the task currently receiving body lines while parsing.
	open *domain.Task
}

// NewState creates an empty state bounded by limits.
func NewState(limits domain.Limits) *State {
	return &State{
		Variables: NewVariableTable(limits.Variables),
		Tasks:     NewTaskRegistry(limits),
	}
}
