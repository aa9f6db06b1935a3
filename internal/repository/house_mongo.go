package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/slug"
)

const housesCollection = "houses"

type MongoHouseRepository struct {
	DB *mongo.Database
}

func NewMongoHouseRepository(db *mongo.Database) *MongoHouseRepository {
	return &MongoHouseRepository{DB: db}
}

// Create claims the identifier and inserts the document in one call. A
// caller-supplied slug is normalized and used as _id directly, so the unique
// index on _id is the existence check; two racing creations with the same
// slug cannot both win.
func (r *MongoHouseRepository) Create(ctx context.Context, customID string, in models.HouseInput) (models.House, error) {
	if err := in.Validate(); err != nil {
		return models.House{}, err
	}

	id := slug.Normalize(customID)
	if id == "" {
		id = primitive.NewObjectID().Hex()
	}

	now := time.Now().UTC()
	doc := houseCreateDoc(id, in, now)

	_, err := r.DB.Collection(housesCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.House{}, &DuplicateIDError{ID: id}
		}
		return models.House{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *MongoHouseRepository) GetByID(ctx context.Context, id string) (models.House, error) {
	var house models.House
	err := r.DB.Collection(housesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&house)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.House{}, ErrNotFound
		}
		return models.House{}, err
	}
	return house, nil
}

func (r *MongoHouseRepository) List(ctx context.Context) ([]models.House, error) {
	return r.list(ctx, bson.M{}, 0)
}

// ListFeatured returns at most limit featured houses, sorted for display.
func (r *MongoHouseRepository) ListFeatured(ctx context.Context, limit int) ([]models.House, error) {
	return r.list(ctx, bson.M{"featured": true}, limit)
}

func (r *MongoHouseRepository) list(ctx context.Context, filter bson.M, limit int) ([]models.House, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.DB.Collection(housesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var houses []models.House
	if err = cursor.All(ctx, &houses); err != nil {
		return nil, err
	}

	if houses == nil {
		houses = []models.House{}
	}
	SortHouses(houses)
	return houses, nil
}

// Update overwrites every form-owned field at the existing id. The id itself
// is immutable; the slug policy only runs at creation.
func (r *MongoHouseRepository) Update(ctx context.Context, id string, in models.HouseInput) (models.House, error) {
	if err := in.Validate(); err != nil {
		return models.House{}, err
	}

	set, unset := houseUpdateDoc(in, time.Now().UTC())
	result, err := r.DB.Collection(housesCollection).UpdateOne(ctx, bson.M{"_id": id}, updateCommand(set, unset))
	if err != nil {
		return models.House{}, err
	}
	if result.MatchedCount == 0 {
		return models.House{}, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *MongoHouseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.Collection(housesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
