package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
	"github.com/lumenlearn/lumenlearn-backend/internal/utils"
)

// MongoService owns the process-wide Mongo client. The driver connects
// lazily; EnsureIndexes forces the first round-trip so a bad MONGO_URL
// fails at startup instead of on the first request.
type MongoService struct {
	client *mongo.Client
	dbName string
	log    *logger.Logger
}

func NewMongoService(logg *logger.Logger) (*MongoService, error) {
	serviceLog := logg.With("service", "MongoService")

	uri := utils.GetEnv("MONGO_URL", "mongodb://localhost:27017", logg)
	dbName := utils.GetEnv("MONGO_DB_NAME", "lumenlearn", logg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Mongo: %w", err)
	}

	serviceLog.Info("Connected to document store", "db", dbName)
	return &MongoService{client: client, dbName: dbName, log: serviceLog}, nil
}

// EnsureIndexes creates the unique email index the Account invariant relies on.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	users := s.Database().Collection(repos.AccountCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure email index: %w", err)
	}
	return nil
}

func (s *MongoService) Database() *mongo.Database {
	return s.client.Database(s.dbName)
}

func (s *MongoService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
