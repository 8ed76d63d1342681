package publiclinks

import (
	"context"
	"time"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PublicLinkMongoRepository struct {
	Collection *mongo.Collection
}

func NewPublicLinkMongoRepository(db *mongo.Client, dbName string) PublicLinkRepository {
	return &PublicLinkMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPublicLinks),
	}
}

func (r *PublicLinkMongoRepository) CreatePublicLink(ctx context.Context, link *models.PublicLink) (string, error) {
	link.ID = ""
	result, err := r.Collection.InsertOne(ctx, link)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PublicLinkMongoRepository) FindByToken(ctx context.Context, token string) (*models.PublicLink, error) {
	var link models.PublicLink
	err := r.Collection.FindOne(ctx, bson.M{"token": token}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}

func (r *PublicLinkMongoRepository) FindLive(ctx context.Context, questionnaireID, patientID string, now time.Time) (*models.PublicLink, error) {
	filter := bson.M{
		"questionnaireId": questionnaireID,
		"patientId":       patientID,
		"$or": bson.A{
			bson.M{"expiresAt": bson.M{"$exists": false}},
			bson.M{"expiresAt": bson.M{"$gt": now}},
		},
	}

	var link models.PublicLink
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.Collection.FindOne(ctx, filter, findOptions).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}
