package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vibe-gaming/cities/internal/domain"
	"github.com/vibe-gaming/cities/internal/repository"
)

type cityService struct {
	cityRepository repository.Cities
}

func newCityService(cityRepository repository.Cities) *cityService {
	return &cityService{
		cityRepository: cityRepository,
	}
}

func (s *cityService) Create(ctx context.Context, city domain.City) (string, error) {
	if city.ID == "" {
		city.ID = uuid.NewString()
	}

	if err := s.cityRepository.Create(ctx, &city); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return "", ErrCityAlreadyExists
		}
		return "", fmt.Errorf("create city failed: %w", err)
	}

	return city.ID, nil
}

func (s *cityService) GetByID(ctx context.Context, id string) (*domain.City, error) {
	city, err := s.cityRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return city, nil
}

func (s *cityService) ListByState(ctx context.Context, state string, window domain.Window) ([]string, int64, error) {
	if window.Offset < 0 || window.Limit < 1 {
		return nil, 0, ErrInvalidWindow
	}

	ids, err := s.cityRepository.GetIDsByState(ctx, state, window)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.cityRepository.CountByState(ctx, state)
	if err != nil {
		return nil, 0, err
	}

	return ids, total, nil
}
