package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/slug"
)

const galleryCollection = "gallery_items"

type MongoGalleryRepository struct {
	DB *mongo.Database
}

func NewMongoGalleryRepository(db *mongo.Database) *MongoGalleryRepository {
	return &MongoGalleryRepository{DB: db}
}

func (r *MongoGalleryRepository) Create(ctx context.Context, customID string, in models.GalleryItemInput) (models.GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return models.GalleryItem{}, err
	}

	id := slug.Normalize(customID)
	if id == "" {
		id = primitive.NewObjectID().Hex()
	}

	now := time.Now().UTC()
	doc := galleryItemCreateDoc(id, in, now)

	_, err := r.DB.Collection(galleryCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.GalleryItem{}, &DuplicateIDError{ID: id}
		}
		return models.GalleryItem{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *MongoGalleryRepository) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.DB.Collection(galleryCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.GalleryItem{}, ErrNotFound
		}
		return models.GalleryItem{}, err
	}
	return item, nil
}

func (r *MongoGalleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	cursor, err := r.DB.Collection(galleryCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.GalleryItem{}
	}
	SortGalleryItems(items)
	return items, nil
}

// Update overwrites the form-owned fields. An absent Title or HouseID in the
// input removes the key from the document, which is how unlinking a house
// works.
func (r *MongoGalleryRepository) Update(ctx context.Context, id string, in models.GalleryItemInput) (models.GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return models.GalleryItem{}, err
	}

	set, unset := galleryItemUpdateDoc(in, time.Now().UTC())
	result, err := r.DB.Collection(galleryCollection).UpdateOne(ctx, bson.M{"_id": id}, updateCommand(set, unset))
	if err != nil {
		return models.GalleryItem{}, err
	}
	if result.MatchedCount == 0 {
		return models.GalleryItem{}, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *MongoGalleryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.Collection(galleryCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
