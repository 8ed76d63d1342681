package questionnaires

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

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	questionnaire.ID = ""
	result, err := r.Collection.InsertOne(ctx, questionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionnaireMongoRepository) FindByID(ctx context.Context, practitionerID, questionnaireID string) (*models.Questionnaire, error) {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var questionnaire models.Questionnaire
	filter := bson.M{"_id": objectID, "practitionerId": practitionerID, "deletedAt": bson.M{"$exists": false}}
	err = r.Collection.FindOne(ctx, filter).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	questionnaire.ID = questionnaireID
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) FindAll(ctx context.Context, practitionerID string, request *requests.ListQuestionnaires) ([]models.Questionnaire, int, error) {
	filter := bson.M{"practitionerId": practitionerID, "deletedAt": bson.M{"$exists": false}}
	if request.Search != "" {
		filter["title"] = bson.M{"$regex": request.Search, "$options": "i"}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip(int64((request.Pagination.Page - 1) * request.Pagination.PageSize)).
		SetLimit(int64(request.Pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var questionnaires []models.Questionnaire
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, int(total), nil
}

func (r *QuestionnaireMongoRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaire.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "practitionerId": questionnaire.PractitionerID}
	update := bson.M{"$set": bson.M{
		"title":       questionnaire.Title,
		"description": questionnaire.Description,
		"questions":   questionnaire.Questions,
		"updatedAt":   time.Now(),
	}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionnaireMongoRepository) SoftDeleteQuestionnaire(ctx context.Context, practitionerID, questionnaireID string) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	filter := bson.M{"_id": objectID, "practitionerId": practitionerID}
	update := bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
