package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vibe-gaming/cities/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cityRepository struct {
	coll *mongo.Collection
}

func newCityRepository(coll *mongo.Collection) *cityRepository {
	return &cityRepository{
		coll: coll,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	if _, err := r.coll.InsertOne(ctx, city.Document()); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEntry
		}
		return errors.Wrap(err, "insert city failed")
	}
	return nil
}

func (r *cityRepository) GetOneByID(ctx context.Context, id string) (*domain.City, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, idFilter(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrapf(err, "find city %q failed", id)
	}

	city := domain.CityFromDocument(doc)
	return &city, nil
}

func (r *cityRepository) GetIDsByState(ctx context.Context, state string, window domain.Window) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: domain.FieldID, Value: 1}}).
		SetSort(bson.D{{Key: domain.FieldID, Value: 1}}).
		SetSkip(window.Offset).
		SetLimit(window.Limit)

	cursor, err := r.coll.Find(ctx, bson.D{{Key: domain.FieldState, Value: state}}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find cities in state %q failed", state)
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0, window.Limit)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode city id failed")
		}
		ids = append(ids, domain.IDString(doc[domain.FieldID]))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate cities in state %q failed", state)
	}

	return ids, nil
}

func (r *cityRepository) CountByState(ctx context.Context, state string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: domain.FieldState, Value: state}})
	if err != nil {
		return 0, errors.Wrapf(err, "count cities in state %q failed", state)
	}
	return n, nil
}

// idFilter matches both string identifiers and, when id is valid hex, the
// equivalent ObjectID.
func idFilter(id string) bson.D {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.D{{Key: domain.FieldID, Value: bson.D{{Key: "$in", Value: bson.A{id, oid}}}}}
	}
	return bson.D{{Key: domain.FieldID, Value: id}}
}
