package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type mongoAccountRepo struct {
	col *mongo.Collection
	log *logger.Logger
}

func NewMongoAccountRepo(db *mongo.Database, baseLog *logger.Logger) AccountRepo {
	repoLog := baseLog.With("repo", "AccountRepo", "engine", "document")
	return &mongoAccountRepo{col: db.Collection(AccountCollection), log: repoLog}
}

func (r *mongoAccountRepo) Create(ctx context.Context, account *types.Account) (*types.Account, error) {
	doc, err := accountToDoc(account)
	if err != nil {
		return nil, err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, storageErr("create account", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return accountFromDoc(doc), nil
}

func (r *mongoAccountRepo) GetByID(ctx context.Context, id string) (*types.Account, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundErr("account", id)
		}
		return nil, storageErr("get account", err)
	}
	account := accountFromDoc(&doc)
	account.PasswordHash = ""
	return account, nil
}

func (r *mongoAccountRepo) GetByEmail(ctx context.Context, email string) (*types.Account, error) {
	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundErr("account", email)
		}
		return nil, storageErr("get account by email", err)
	}
	return accountFromDoc(&doc), nil
}

func (r *mongoAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, storageErr("check email", err)
	}
	return count > 0, nil
}
