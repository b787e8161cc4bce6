package usecases

import (
	"context"

	"miniticker/internal/application/activity/dto"
)

type PersonalFeedExecutor interface {
	Execute(ctx context.Context, query PersonalFeedQuery) ([]dto.FeedItemDTO, error)
}

type GlobalFeedExecutor interface {
	Execute(ctx context.Context, query GlobalFeedQuery) ([]dto.FeedItemDTO, error)
}
