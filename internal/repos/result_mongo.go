package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type mongoResultRepo struct {
	col *mongo.Collection
	log *logger.Logger
}

func NewMongoResultRepo(db *mongo.Database, baseLog *logger.Logger) ResultRepo {
	repoLog := baseLog.With("repo", "ResultRepo", "engine", "document")
	return &mongoResultRepo{col: db.Collection(ResultCollection), log: repoLog}
}

func (r *mongoResultRepo) Create(ctx context.Context, result *types.Result) (*types.Result, error) {
	doc, err := resultToDoc(result)
	if err != nil {
		return nil, err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, storageErr("create result", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return resultFromDoc(doc), nil
}

func (r *mongoResultRepo) GetByOwner(ctx context.Context, ownerID string) ([]*types.Result, error) {
	return r.list(ctx, "user_id", ownerID)
}

func (r *mongoResultRepo) GetByModule(ctx context.Context, moduleID string) ([]*types.Result, error) {
	return r.list(ctx, "module_id", moduleID)
}

func (r *mongoResultRepo) list(ctx context.Context, field, id string) ([]*types.Result, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(MaxListResults)
	cur, err := r.col.Find(ctx, bson.M{field: oid}, opts)
	if err != nil {
		return nil, storageErr("list results", err)
	}
	defer cur.Close(ctx)

	var results []*types.Result
	for cur.Next(ctx) {
		var doc resultDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr("decode result", err)
		}
		results = append(results, resultFromDoc(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr("list results", err)
	}
	return results, nil
}
