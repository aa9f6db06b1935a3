package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"baanthai-construction-api/internal/models"
)

const siteContentCollection = "site_content"

// MongoContentRepository stores the footer and hero singletons as documents
// with well-known ids. Saves replace the whole document (upsert), matching
// the always-overwrite semantics of the admin content forms.
type MongoContentRepository struct {
	DB *mongo.Database
}

func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{DB: db}
}

func (r *MongoContentRepository) GetFooter(ctx context.Context) (models.FooterContent, error) {
	var content models.FooterContent
	err := r.DB.Collection(siteContentCollection).
		FindOne(ctx, bson.M{"_id": models.FooterContentID}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FooterContent{}, ErrNotFound
		}
		return models.FooterContent{}, err
	}
	return content, nil
}

func (r *MongoContentRepository) SaveFooter(ctx context.Context, content models.FooterContent) (models.FooterContent, error) {
	content.ID = models.FooterContentID
	content.UpdatedAt = time.Now().UTC()
	if content.Keywords == nil {
		content.Keywords = []string{}
	}
	if content.Services == nil {
		content.Services = []string{}
	}

	_, err := r.DB.Collection(siteContentCollection).ReplaceOne(ctx,
		bson.M{"_id": models.FooterContentID}, content, options.Replace().SetUpsert(true))
	if err != nil {
		return models.FooterContent{}, err
	}
	return content, nil
}

func (r *MongoContentRepository) GetHero(ctx context.Context) (models.HeroContent, error) {
	var content models.HeroContent
	err := r.DB.Collection(siteContentCollection).
		FindOne(ctx, bson.M{"_id": models.HeroContentID}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.HeroContent{}, ErrNotFound
		}
		return models.HeroContent{}, err
	}
	return content, nil
}

func (r *MongoContentRepository) SaveHero(ctx context.Context, content models.HeroContent) (models.HeroContent, error) {
	content.ID = models.HeroContentID
	content.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Collection(siteContentCollection).ReplaceOne(ctx,
		bson.M{"_id": models.HeroContentID}, content, options.Replace().SetUpsert(true))
	if err != nil {
		return models.HeroContent{}, err
	}
	return content, nil
}
