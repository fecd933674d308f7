package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/workflow"
)

func TestSteps_Order(t *testing.T) {
	steps := workflow.Steps()

	assert.Len(t, steps, 7)
	assert.Equal(t, "overview", steps[0].ID)
	assert.Equal(t, "posting", steps[6].ID)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Index)
	}
}

func TestStepByIndex(t *testing.T) {
	step, err := workflow.StepByIndex(2)
	assert.NoError(t, err)
	assert.Equal(t, "style", step.ID)

	_, err = workflow.StepByIndex(8)
	assert.Error(t, err)

	_, err = workflow.StepByIndex(0)
	assert.Error(t, err)
}

func TestTransition_Advance(t *testing.T) {
	current, _ := workflow.StepByIndex(1)

	next, clearStyle, err := workflow.Transition(current, workflow.ActionAdvance)

	assert.NoError(t, err)
	assert.False(t, clearStyle)
	assert.Equal(t, "style", next.ID)
	assert.Equal(t, 2, next.Index)
}

func TestTransition_AdvanceFromTerminal(t *testing.T) {
	current, _ := workflow.StepByIndex(workflow.LastStepIndex)

	_, _, err := workflow.Transition(current, workflow.ActionAdvance)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestTransition_ChangeStyle(t *testing.T) {
	current, _ := workflow.StepByIndex(6)

	next, clearStyle, err := workflow.Transition(current, workflow.ActionChangeStyle)

	assert.NoError(t, err)
	assert.True(t, clearStyle)
	assert.Equal(t, "style", next.ID)
	assert.Equal(t, workflow.StyleStepIndex, next.Index)
}

func TestTransition_UnknownAction(t *testing.T) {
	current, _ := workflow.StepByIndex(3)

	_, _, err := workflow.Transition(current, "rewind")

	assert.Error(t, err)
}
