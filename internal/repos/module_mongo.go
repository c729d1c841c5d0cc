package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type mongoModuleRepo struct {
	col *mongo.Collection
	log *logger.Logger
}

func NewMongoModuleRepo(db *mongo.Database, baseLog *logger.Logger) ModuleRepo {
	repoLog := baseLog.With("repo", "ModuleRepo", "engine", "document")
	return &mongoModuleRepo{col: db.Collection(ModuleCollection), log: repoLog}
}

func (r *mongoModuleRepo) Create(ctx context.Context, module *types.Module) (*types.Module, error) {
	doc, err := moduleToDoc(module)
	if err != nil {
		return nil, err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, storageErr("create module", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return moduleFromDoc(doc), nil
}

func (r *mongoModuleRepo) GetByID(ctx context.Context, id string) (*types.Module, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc moduleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundErr("module", id)
		}
		return nil, storageErr("get module", err)
	}
	return moduleFromDoc(&doc), nil
}

func (r *mongoModuleRepo) GetByOwner(ctx context.Context, ownerID string) ([]*types.Module, error) {
	oid, err := parseObjectID(ownerID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(MaxListResults)
	cur, err := r.col.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		return nil, storageErr("list modules", err)
	}
	defer cur.Close(ctx)

	var modules []*types.Module
	for cur.Next(ctx) {
		var doc moduleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr("decode module", err)
		}
		modules = append(modules, moduleFromDoc(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr("list modules", err)
	}
	return modules, nil
}
