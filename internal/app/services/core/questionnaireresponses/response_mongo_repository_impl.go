package questionnaireresponses

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

type ResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewResponseMongoRepository(db *mongo.Client, dbName string) ResponseRepository {
	return &ResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaireResponses),
	}
}

func (r *ResponseMongoRepository) CreateResponse(ctx context.Context, response *models.QuestionnaireResponse) (string, bool, error) {
	response.ID = ""
	result, err := r.Collection.InsertOne(ctx, response)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", true, nil
		}
		return "", false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), false, nil
}

func (r *ResponseMongoRepository) FindByPublicLinkID(ctx context.Context, publicLinkID string) (*models.QuestionnaireResponse, error) {
	var response models.QuestionnaireResponse
	err := r.Collection.FindOne(ctx, bson.M{"publicLinkId": publicLinkID}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

func (r *ResponseMongoRepository) FindByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var response models.QuestionnaireResponse
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	response.ID = responseID
	return &response, nil
}

func (r *ResponseMongoRepository) FindAllByQuestionnaireID(ctx context.Context, questionnaireID string, pagination *requests.Pagination) ([]models.QuestionnaireResponse, int, error) {
	filter := bson.M{"questionnaireId": questionnaireID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.QuestionnaireResponse
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, int(total), nil
}

func (r *ResponseMongoRepository) FindAllForSummary(ctx context.Context, questionnaireID string) ([]models.QuestionnaireResponse, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"questionnaireId": questionnaireID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.QuestionnaireResponse
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}
