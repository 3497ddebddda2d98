package repository

import (
	"context"

	"github.com/vibe-gaming/cities/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Cities Cities
	States States
}

func NewRepositories(coll *mongo.Collection) *Repositories {
	return &Repositories{
		Cities: newCityRepository(coll),
		States: newStateView(coll),
	}
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) error
	GetOneByID(ctx context.Context, id string) (*domain.City, error)
	GetIDsByState(ctx context.Context, state string, window domain.Window) ([]string, error)
	CountByState(ctx context.Context, state string) (int64, error)
}

// States is a read-only view derived from the state field of city documents.
type States interface {
	GetAll(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, state string) (bool, error)
}
