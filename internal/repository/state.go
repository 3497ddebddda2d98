package repository

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/vibe-gaming/cities/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type stateView struct {
	coll *mongo.Collection
}

func newStateView(coll *mongo.Collection) *stateView {
	return &stateView{
		coll: coll,
	}
}

func (v *stateView) GetAll(ctx context.Context) ([]string, error) {
	values, err := v.coll.Distinct(ctx, domain.FieldState, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "distinct states failed")
	}

	states := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			states = append(states, s)
		}
	}
	sort.Strings(states)

	return states, nil
}

func (v *stateView) Exists(ctx context.Context, state string) (bool, error) {
	n, err := v.coll.CountDocuments(ctx, bson.D{{Key: domain.FieldState, Value: state}}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrapf(err, "check state %q failed", state)
	}
	return n > 0, nil
}
