// Package requesttype contains the request-type catalog entity. A request
// type categorizes tickets and belongs to exactly one area.
package requesttype

import (
	"fmt"
	"time"

	"miniticker/internal/shared/biztime"
)

type RequestType struct {
	id        uint
	name      string
	areaID    uint
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRequestType(name string, areaID uint) (*RequestType, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if areaID == 0 {
		return nil, fmt.Errorf("area ID is required")
	}

	now := biztime.NowUTC()
	return &RequestType{
		name:      name,
		areaID:    areaID,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRequestType(id uint, name string, areaID uint, active bool, createdAt, updatedAt time.Time) (*RequestType, error) {
	if id == 0 {
		return nil, fmt.Errorf("request type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if areaID == 0 {
		return nil, fmt.Errorf("area ID is required")
	}

	return &RequestType{
		id:        id,
		name:      name,
		areaID:    areaID,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (rt *RequestType) ID() uint             { return rt.id }
func (rt *RequestType) Name() string         { return rt.name }
func (rt *RequestType) AreaID() uint         { return rt.areaID }
func (rt *RequestType) IsActive() bool       { return rt.active }
func (rt *RequestType) CreatedAt() time.Time { return rt.createdAt }
func (rt *RequestType) UpdatedAt() time.Time { return rt.updatedAt }

func (rt *RequestType) SetID(id uint) error {
	if rt.id != 0 {
		return fmt.Errorf("request type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request type ID cannot be zero")
	}
	rt.id = id
	return nil
}

func (rt *RequestType) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	rt.name = name
	rt.updatedAt = biztime.NowUTC()
	return nil
}

func (rt *RequestType) Activate() {
	rt.active = true
	rt.updatedAt = biztime.NowUTC()
}

func (rt *RequestType) Deactivate() {
	rt.active = false
	rt.updatedAt = biztime.NowUTC()
}
