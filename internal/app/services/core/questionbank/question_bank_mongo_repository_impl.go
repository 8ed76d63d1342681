package questionbank

import (
	"context"
	"time"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionBankMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionBankMongoRepository(db *mongo.Client, dbName string) QuestionBankRepository {
	return &QuestionBankMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionBank),
	}
}

func (r *QuestionBankMongoRepository) CreateEntry(ctx context.Context, entry *models.QuestionBankEntry) (string, error) {
	entry.ID = ""
	result, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionBankMongoRepository) FindByID(ctx context.Context, entryID string) (*models.QuestionBankEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var entry models.QuestionBankEntry
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	entry.ID = entryID
	return &entry, nil
}

func (r *QuestionBankMongoRepository) FindAll(ctx context.Context, ownerID string, request *requests.ListQuestionBank) ([]models.QuestionBankEntry, int, error) {
	// System-owned entries (no ownerId) are visible to everyone alongside
	// the caller's own entries.
	filter := bson.M{"$or": bson.A{
		bson.M{"ownerId": bson.M{"$exists": false}},
		bson.M{"ownerId": ownerID},
	}}
	if request.Category != "" {
		filter["category"] = request.Category
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetSkip(int64((request.Pagination.Page - 1) * request.Pagination.PageSize)).
		SetLimit(int64(request.Pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.QuestionBankEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, int(total), nil
}

func (r *QuestionBankMongoRepository) UpdateEntry(ctx context.Context, entry *models.QuestionBankEntry) error {
	objectID, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"category":  entry.Category,
		"question":  entry.Question,
		"updatedAt": time.Now(),
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionBankMongoRepository) DeleteEntry(ctx context.Context, entryID string) error {
	objectID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
