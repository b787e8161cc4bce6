// Package dto defines the transfer shapes the request type use cases return
// to the interface layer.
package dto

import (
	"time"

	"miniticker/internal/domain/requesttype"
)

type RequestTypeDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	AreaID    uint      `json:"area_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRequestType(rt *requesttype.RequestType) RequestTypeDTO {
	return RequestTypeDTO{
		ID:        rt.ID(),
		Name:      rt.Name(),
		AreaID:    rt.AreaID(),
		Active:    rt.IsActive(),
		CreatedAt: rt.CreatedAt(),
		UpdatedAt: rt.UpdatedAt(),
	}
}

func FromRequestTypes(types []*requesttype.RequestType) []RequestTypeDTO {
	out := make([]RequestTypeDTO, 0, len(types))
	for _, rt := range types {
		out = append(out, FromRequestType(rt))
	}
	return out
}
