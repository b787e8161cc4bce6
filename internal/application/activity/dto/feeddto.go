// Package dto defines the transfer shapes of the activity feed.
package dto

import (
	"time"

	"miniticker/internal/domain/activity"
)

type FeedItemDTO struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TimeLabel string    `json:"time_label"`
	Tag       string    `json:"tag"`
	Timestamp time.Time `json:"timestamp"`
}

func FromRecord(r activity.Record) FeedItemDTO {
	return FeedItemDTO{
		Title:     r.Title,
		Message:   r.Message,
		TimeLabel: r.TimeLabel,
		Tag:       r.Tag,
		Timestamp: r.Timestamp,
	}
}

func FromRecords(records []activity.Record) []FeedItemDTO {
	items := make([]FeedItemDTO, 0, len(records))
	for _, r := range records {
		items = append(items, FromRecord(r))
	}
	return items
}
