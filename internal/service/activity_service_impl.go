package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

type activityService struct {
	docs repository.DocumentRepo
	acts repository.ActivityRepo
}

// NewActivityService creates the ActivityService.
func NewActivityService(docs repository.DocumentRepo, acts repository.ActivityRepo) ActivityService {
	return &activityService{docs: docs, acts: acts}
}

func (s *activityService) ListRecent(ctx context.Context, ref string, limit int) ([]*domain.ActivityEntry, error) {
	rec, err := resolveRecord(ctx, s.docs, ref)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return s.acts.ListRecent(ctx, rec.ID, limit)
}
