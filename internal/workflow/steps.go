package workflow

import "fmt"

// Step is one named stage of the studio wizard.
type Step struct {
	ID    string
	Name  string
	Index int
}

// The fixed step order. Indexes are 1-based and persisted on the
// campaign record.
var steps = []Step{
	{ID: "overview", Name: "Project Overview", Index: 1},
	{ID: "style", Name: "Art Style", Index: 2},
	{ID: "brand", Name: "Brand Guidelines", Index: 3},
	{ID: "characters", Name: "Characters", Index: 4},
	{ID: "script", Name: "Script & Scenes", Index: 5},
	{ID: "preprocessing", Name: "Assets & Video", Index: 6},
	{ID: "posting", Name: "Post & Save", Index: 7},
}

// Actions understood by Transition.
const (
	ActionAdvance     = "advance"
	ActionChangeStyle = "change_style"
)

const (
	FirstStepIndex = 1
	LastStepIndex  = 7
	StyleStepIndex = 2
)

// Steps returns the full ordered step list.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// StepByIndex resolves a 1-based step index.
func StepByIndex(index int) (Step, error) {
	for _, s := range steps {
		if s.Index == index {
			return s, nil
		}
	}
	return Step{}, fmt.Errorf("no workflow step with index %d", index)
}

// StepByID resolves a step by its id string.
func StepByID(id string) (Step, error) {
	for _, s := range steps {
		if s.ID == id {
			return s, nil
		}
	}
	return Step{}, fmt.Errorf("no workflow step with id %q", id)
}

// Transition computes the next step for a user action. ClearStyle is
// true when the stored style selection must be dropped along with the
// move. Advancing past the last step is an error; the wizard has no
// further transition from "posting".
func Transition(current Step, action string) (next Step, clearStyle bool, err error) {
	switch action {
	case ActionAdvance:
		if current.Index >= LastStepIndex {
			return Step{}, false, fmt.Errorf("step %q is terminal", current.ID)
		}
		next, err = StepByIndex(current.Index + 1)
		return next, false, err
	case ActionChangeStyle:
		next, err = StepByIndex(StyleStepIndex)
		return next, true, err
	default:
		return Step{}, false, fmt.Errorf("unknown workflow action %q", action)
	}
}
