package documents

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Client, dbName string) DocumentRepository {
	return &DocumentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDocuments),
	}
}

func (r *DocumentMongoRepository) CreateDocument(ctx context.Context, document *models.Document) (string, error) {
	document.ID = ""
	result, err := r.Collection.InsertOne(ctx, document)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DocumentMongoRepository) FindByID(ctx context.Context, practitionerID, documentID string) (*models.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var document models.Document
	filter := bson.M{"_id": objectID, "practitionerId": practitionerID}
	err = r.Collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	document.ID = documentID
	return &document, nil
}

func (r *DocumentMongoRepository) FindAllByPatient(ctx context.Context, practitionerID, patientID string, pagination *requests.Pagination) ([]models.Document, int, error) {
	filter := bson.M{"practitionerId": practitionerID, "patientId": patientID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return documents, int(total), nil
}

func (r *DocumentMongoRepository) DeleteDocument(ctx context.Context, practitionerID, documentID string) error {
	objectID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "practitionerId": practitionerID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
