package app

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
)

type Repos struct {
	Account repos.AccountRepo
	Module  repos.ModuleRepo
	Result  repos.ResultRepo
}

// The storage engine is chosen once, here. Everything above the Repos struct
// is engine-agnostic.

func wireRelationalRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring relational repos...")
	return Repos{
		Account: repos.NewSQLAccountRepo(db, log),
		Module:  repos.NewSQLModuleRepo(db, log),
		Result:  repos.NewSQLResultRepo(db, log),
	}
}

func wireDocumentRepos(db *mongo.Database, log *logger.Logger) Repos {
	log.Info("Wiring document repos...")
	return Repos{
		Account: repos.NewMongoAccountRepo(db, log),
		Module:  repos.NewMongoModuleRepo(db, log),
		Result:  repos.NewMongoResultRepo(db, log),
	}
}
