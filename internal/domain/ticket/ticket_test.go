package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "miniticker/internal/domain/ticket/valueobjects"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
)

func newTestTicket(t *testing.T, status vo.Status) *Ticket {
	t.Helper()
	mgr := uint(7)
	tk, err := ReconstructTicket(
		1, "SYS-2026-0001",
		"VPN access", "Cannot connect to the office VPN",
		vo.PriorityMedium, status,
		2, 3, 4, &mgr, nil,
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), nil,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		description string
		priority    vo.Priority
		areaID      uint
		typeID      uint
		requesterID uint
		wantErr     string
	}{
		{
			name:        "valid",
			subject:     "Printer offline",
			description: "The third-floor printer does not respond",
			priority:    vo.PriorityLow,
			areaID:      1, typeID: 1, requesterID: 1,
		},
		{
			name:        "empty subject",
			description: "body",
			priority:    vo.PriorityLow,
			areaID:      1, typeID: 1, requesterID: 1,
			wantErr: "subject is required",
		},
		{
			name:        "subject too long",
			subject:     strings.Repeat("a", 201),
			description: "body",
			priority:    vo.PriorityLow,
			areaID:      1, typeID: 1, requesterID: 1,
			wantErr: "subject exceeds maximum length",
		},
		{
			name:     "empty description",
			subject:  "Printer offline",
			priority: vo.PriorityLow,
			areaID:   1, typeID: 1, requesterID: 1,
			wantErr: "description is required",
		},
		{
			name:        "invalid priority",
			subject:     "Printer offline",
			description: "body",
			priority:    vo.Priority("urgent"),
			areaID:      1, typeID: 1, requesterID: 1,
			wantErr: "invalid priority",
		},
		{
			name:        "missing area",
			subject:     "Printer offline",
			description: "body",
			priority:    vo.PriorityLow,
			typeID:      1, requesterID: 1,
			wantErr: "area ID is required",
		},
		{
			name:        "missing requester",
			subject:     "Printer offline",
			description: "body",
			priority:    vo.PriorityLow,
			areaID:      1, typeID: 1,
			wantErr: "requester ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.subject, tt.description, tt.priority, tt.areaID, tt.typeID, tt.requesterID)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusNew, tk.Status())
			assert.Empty(t, tk.Number())
			assert.Zero(t, tk.ID())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestTicket_SetNumberOnce(t *testing.T) {
	tk, err := NewTicket("s", "d", vo.PriorityLow, 1, 1, 1)
	require.NoError(t, err)

	require.NoError(t, tk.SetNumber("SYS-2026-0001"))
	assert.Error(t, tk.SetNumber("SYS-2026-0002"))
	assert.Equal(t, "SYS-2026-0001", tk.Number())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.Status
		to         vo.Status
		role       uservo.Role
		reason     string
		wantErr    bool
		errorCheck func(error) bool
	}{
		{
			name: "manager progresses new ticket",
			from: vo.StatusNew, to: vo.StatusInProgress,
			role: uservo.RoleManager,
		},
		{
			name: "manager resolves",
			from: vo.StatusInProgress, to: vo.StatusResolved,
			role: uservo.RoleManager,
		},
		{
			name: "admin closes resolved ticket",
			from: vo.StatusResolved, to: vo.StatusClosed,
			role: uservo.RoleAdmin,
		},
		{
			name: "super admin closes",
			from: vo.StatusResolved, to: vo.StatusClosed,
			role: uservo.RoleSuperAdmin,
		},
		{
			name: "manager may not close",
			from: vo.StatusResolved, to: vo.StatusClosed,
			role:    uservo.RoleManager,
			wantErr: true, errorCheck: errors.IsForbiddenError,
		},
		{
			name: "requester may not close",
			from: vo.StatusResolved, to: vo.StatusClosed,
			role:    uservo.RoleRequester,
			wantErr: true, errorCheck: errors.IsForbiddenError,
		},
		{
			name: "backward move",
			from: vo.StatusResolved, to: vo.StatusInProgress,
			role:    uservo.RoleAdmin,
			wantErr: true, errorCheck: errors.IsInvalidTransitionError,
		},
		{
			name: "self transition",
			from: vo.StatusInProgress, to: vo.StatusInProgress,
			role:    uservo.RoleManager,
			wantErr: true, errorCheck: errors.IsInvalidTransitionError,
		},
		{
			name: "closed ticket is frozen",
			from: vo.StatusClosed, to: vo.StatusRejected,
			role: uservo.RoleAdmin, reason: "duplicate",
			wantErr: true, errorCheck: errors.IsInvalidTransitionError,
		},
		{
			name: "rejected ticket is frozen",
			from: vo.StatusRejected, to: vo.StatusInProgress,
			role:    uservo.RoleAdmin,
			wantErr: true, errorCheck: errors.IsInvalidTransitionError,
		},
		{
			name: "reject requires reason",
			from: vo.StatusInProgress, to: vo.StatusRejected,
			role:    uservo.RoleManager,
			wantErr: true, errorCheck: errors.IsValidationError,
		},
		{
			name: "reject with reason from resolved",
			from: vo.StatusResolved, to: vo.StatusRejected,
			role: uservo.RoleManager, reason: "requester withdrew the request",
		},
		{
			name: "invalid target status",
			from: vo.StatusNew, to: vo.Status("pending"),
			role:    uservo.RoleAdmin,
			wantErr: true, errorCheck: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTicket(t, tt.from)
			err := tk.ChangeStatus(tt.to, tt.role, tt.reason)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, tt.errorCheck(err))
				assert.Equal(t, tt.from, tk.Status(), "status must not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, tk.Status())
			require.NotNil(t, tk.UpdatedAt())
		})
	}
}

func TestTicket_UpdateDetails(t *testing.T) {
	t.Run("editable while new", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusNew)
		err := tk.UpdateDetails("New subject", "New description", vo.PriorityHigh)
		require.NoError(t, err)
		assert.Equal(t, "New subject", tk.Subject())
		assert.Equal(t, vo.PriorityHigh, tk.Priority())
	})

	t.Run("frozen once in progress", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress)
		err := tk.UpdateDetails("New subject", "New description", vo.PriorityHigh)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("validation still applies", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusNew)
		err := tk.UpdateDetails("", "New description", vo.PriorityHigh)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestTicket_AssignManager(t *testing.T) {
	t.Run("assigns", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress)
		require.NoError(t, tk.AssignManager(42))
		require.NotNil(t, tk.ManagerID())
		assert.Equal(t, uint(42), *tk.ManagerID())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusNew)
		assert.Error(t, tk.AssignManager(0))
	})

	t.Run("rejects on finalized ticket", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusClosed)
		err := tk.AssignManager(42)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}

func TestCanSetStatus(t *testing.T) {
	assert.True(t, CanSetStatus(uservo.RoleRequester, vo.StatusRejected))
	assert.True(t, CanSetStatus(uservo.RoleManager, vo.StatusResolved))
	assert.False(t, CanSetStatus(uservo.RoleManager, vo.StatusClosed))
	assert.False(t, CanSetStatus(uservo.RoleRequester, vo.StatusClosed))
	assert.True(t, CanSetStatus(uservo.RoleAdmin, vo.StatusClosed))
	assert.True(t, CanSetStatus(uservo.RoleSuperAdmin, vo.StatusClosed))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "SYS-2026-0001", FormatNumber("SYS", 2026, 1))
	assert.Equal(t, "GEN-2026-0042", FormatNumber("GEN", 2026, 42))
	assert.Equal(t, "ADM-2027-9999", FormatNumber("ADM", 2027, 9999))
	assert.Equal(t, "ADM-2027-10000", FormatNumber("ADM", 2027, 10000))
}
