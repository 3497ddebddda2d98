package service

import (
	"context"

	"github.com/vibe-gaming/cities/internal/domain"
	"github.com/vibe-gaming/cities/internal/repository"
)

type Services struct {
	Cities Cities
	States States
}

type Deps struct {
	Repos *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Cities: newCityService(deps.Repos.Cities),
		States: newStateService(deps.Repos.States),
	}
}

type Cities interface {
	// Create stores the city and returns its identifier, generating one when
	// the city has none.
	Create(ctx context.Context, city domain.City) (string, error)
	GetByID(ctx context.Context, id string) (*domain.City, error)
	// ListByState returns a window of city ids for state together with the
	// number of cities in that state.
	ListByState(ctx context.Context, state string, window domain.Window) ([]string, int64, error)
}

type States interface {
	GetAll(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, state string) (bool, error)
}
