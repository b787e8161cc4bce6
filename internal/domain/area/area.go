// Package area contains the area aggregate. An area owns request types and
// tickets, carries the short prefix used in ticket numbering, and has at most
// one responsible manager.
package area

import (
	"fmt"
	"time"

	"miniticker/internal/shared/biztime"
)

type Area struct {
	id            uint
	name          string
	prefix        string
	active        bool
	responsibleID *uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewArea(name, prefix string) (*Area, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(prefix) == 0 {
		prefix = GeneratePrefix(name)
	}
	if len(prefix) > 10 {
		return nil, fmt.Errorf("prefix exceeds maximum length of 10 characters")
	}

	now := biztime.NowUTC()
	return &Area{
		name:      name,
		prefix:    prefix,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructArea(
	id uint,
	name, prefix string,
	active bool,
	responsibleID *uint,
	createdAt, updatedAt time.Time,
) (*Area, error) {
	if id == 0 {
		return nil, fmt.Errorf("area ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Area{
		id:            id,
		name:          name,
		prefix:        prefix,
		active:        active,
		responsibleID: responsibleID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Area) ID() uint             { return a.id }
func (a *Area) Name() string         { return a.name }
func (a *Area) Prefix() string       { return a.prefix }
func (a *Area) IsActive() bool       { return a.active }
func (a *Area) ResponsibleID() *uint { return a.responsibleID }
func (a *Area) CreatedAt() time.Time { return a.createdAt }
func (a *Area) UpdatedAt() time.Time { return a.updatedAt }

func (a *Area) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("area ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Area) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	a.name = name
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Area) SetPrefix(prefix string) error {
	if len(prefix) == 0 {
		return fmt.Errorf("prefix cannot be empty")
	}
	if len(prefix) > 10 {
		return fmt.Errorf("prefix exceeds maximum length of 10 characters")
	}
	a.prefix = prefix
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Area) Activate() {
	a.active = true
	a.updatedAt = biztime.NowUTC()
}

func (a *Area) Deactivate() {
	a.active = false
	a.updatedAt = biztime.NowUTC()
}

// SetResponsible and ClearResponsible mutate the area side of the
// bidirectional responsible relationship. They must only be called by the
// responsibility guard so both sides stay in sync.
func (a *Area) SetResponsible(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	a.responsibleID = &userID
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Area) ClearResponsible() {
	a.responsibleID = nil
	a.updatedAt = biztime.NowUTC()
}
