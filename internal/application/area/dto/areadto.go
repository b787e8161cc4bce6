// Package dto defines the transfer shapes the area use cases return to the
// interface layer.
package dto

import (
	"time"

	"miniticker/internal/domain/area"
)

type AreaDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Prefix        string    `json:"prefix"`
	Active        bool      `json:"active"`
	ResponsibleID *uint     `json:"responsible_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromArea(a *area.Area) AreaDTO {
	return AreaDTO{
		ID:            a.ID(),
		Name:          a.Name(),
		Prefix:        a.Prefix(),
		Active:        a.IsActive(),
		ResponsibleID: a.ResponsibleID(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func FromAreas(areas []*area.Area) []AreaDTO {
	out := make([]AreaDTO, 0, len(areas))
	for _, a := range areas {
		out = append(out, FromArea(a))
	}
	return out
}
