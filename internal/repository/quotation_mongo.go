package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"baanthai-construction-api/internal/models"
)

const quotationsCollection = "quotation_requests"

type MongoQuotationRepository struct {
	DB *mongo.Database
}

func NewMongoQuotationRepository(db *mongo.Database) *MongoQuotationRepository {
	return &MongoQuotationRepository{DB: db}
}

// Create validates the submission and inserts it with a generated id. The
// consent date and status are assigned here, never taken from the submitter.
func (r *MongoQuotationRepository) Create(ctx context.Context, req models.QuotationRequest) (models.QuotationRequest, error) {
	if err := req.Validate(); err != nil {
		return models.QuotationRequest{}, err
	}

	now := time.Now().UTC()
	req.ID = primitive.NewObjectID()
	req.Status = models.QuotationStatusPending
	req.PDPAConsentDate = now
	req.CreatedAt = now
	if req.WorkTypes == nil {
		req.WorkTypes = []string{}
	}
	if !req.HasOtherWorkType() {
		req.OtherWorkType = ""
	}

	_, err := r.DB.Collection(quotationsCollection).InsertOne(ctx, req)
	if err != nil {
		return models.QuotationRequest{}, err
	}
	return req, nil
}

// List returns submissions newest first for the admin review screen.
func (r *MongoQuotationRepository) List(ctx context.Context) ([]models.QuotationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.DB.Collection(quotationsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.QuotationRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	if requests == nil {
		requests = []models.QuotationRequest{}
	}
	return requests, nil
}

func (r *MongoQuotationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if !models.IsValidQuotationStatus(status) {
		return models.NewValidationError("status", "unknown status "+status)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.DB.Collection(quotationsCollection).UpdateOne(ctx,
		bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoQuotationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.DB.Collection(quotationsCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
