package service

import (
	"context"

	"github.com/vibe-gaming/cities/internal/repository"
)

type stateService struct {
	stateView repository.States
}

func newStateService(stateView repository.States) *stateService {
	return &stateService{
		stateView: stateView,
	}
}

func (s *stateService) GetAll(ctx context.Context) ([]string, error) {
	return s.stateView.GetAll(ctx)
}

func (s *stateService) Exists(ctx context.Context, state string) (bool, error) {
	return s.stateView.Exists(ctx, state)
}
