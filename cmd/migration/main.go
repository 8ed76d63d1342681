package main

import (
	"context"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/drivers/database"
	"vitalia-service/internal/app/drivers/logger"
	"vitalia-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Ensures the indexes the service depends on. The unique index on
// questionnaire_responses.publicLinkId is load-bearing: it is what makes a
// public link answerable at most once under concurrent submissions.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionPublicLinks), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "token", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(constvars.MongoIndexPublicLinkToken),
		},
		{
			Keys: bson.D{{Key: "questionnaireId", Value: 1}, {Key: "patientId", Value: 1}},
		},
	})

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionQuestionnaireResponses), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "publicLinkId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(constvars.MongoIndexResponsePerLink),
		},
		{
			Keys: bson.D{{Key: "questionnaireId", Value: 1}, {Key: "completedAt", Value: -1}},
		},
	})

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionPatients), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "practitionerId", Value: 1}, {Key: "fullName", Value: 1}},
		},
	})

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionQuestionnaires), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "practitionerId", Value: 1}, {Key: "updatedAt", Value: -1}},
		},
	})

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionQuestionBank), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "category", Value: 1}},
		},
	})

	ensureIndexes(ctx, log, db.Collection(constvars.MongoCollectionDocuments), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "practitionerId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	})

	log.Info("all indexes ensured")
}

func ensureIndexes(ctx context.Context, log *zap.Logger, collection *mongo.Collection, indexModels []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		log.Fatal("failed to create indexes",
			zap.String("collection", collection.Name()),
			zap.Error(err),
		)
	}
	log.Info("indexes ensured",
		zap.String("collection", collection.Name()),
		zap.Strings("indexes", names),
	)
}
