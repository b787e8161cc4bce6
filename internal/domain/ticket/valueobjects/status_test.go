package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"new", "new", StatusNew, false},
		{"in progress", "in_progress", StatusInProgress, false},
		{"resolved", "resolved", StatusResolved, false},
		{"closed", "closed", StatusClosed, false},
		{"rejected", "rejected", StatusRejected, false},
		{"unknown", "pending", "", true},
		{"empty", "", "", true},
		{"case sensitive", "New", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"new to in_progress", StatusNew, StatusInProgress, true},
		{"new to resolved skips a step", StatusNew, StatusResolved, true},
		{"new to closed", StatusNew, StatusClosed, true},
		{"in_progress to resolved", StatusInProgress, StatusResolved, true},
		{"resolved to closed", StatusResolved, StatusClosed, true},

		{"no backward move", StatusInProgress, StatusNew, false},
		{"no self transition", StatusInProgress, StatusInProgress, false},
		{"resolved back to in_progress", StatusResolved, StatusInProgress, false},

		{"reject from new", StatusNew, StatusRejected, true},
		{"reject from in_progress", StatusInProgress, StatusRejected, true},
		{"reject from resolved", StatusResolved, StatusRejected, true},

		{"closed is terminal", StatusClosed, StatusRejected, false},
		{"closed accepts nothing", StatusClosed, StatusInProgress, false},
		{"rejected is terminal", StatusRejected, StatusClosed, false},
		{"rejected accepts nothing", StatusRejected, StatusNew, false},

		{"invalid target", StatusNew, Status("pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusNew.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestStatus_IsCompleted(t *testing.T) {
	assert.False(t, StatusNew.IsCompleted())
	assert.False(t, StatusInProgress.IsCompleted())
	assert.True(t, StatusResolved.IsCompleted())
	assert.True(t, StatusClosed.IsCompleted())
	assert.True(t, StatusRejected.IsCompleted())
}

func TestStatus_Rank(t *testing.T) {
	assert.Less(t, StatusNew.Rank(), StatusInProgress.Rank())
	assert.Less(t, StatusInProgress.Rank(), StatusResolved.Rank())
	assert.Less(t, StatusResolved.Rank(), StatusClosed.Rank())
}
