package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
	"github.com/lumenlearn/lumenlearn-backend/internal/utils"
)

// RelationalService owns the process-wide GORM handle. Creates run inside a
// per-request transaction (one implicit commit per create); reads go through
// the shared pool, which releases connections on every exit path.
type RelationalService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationalService(logg *logger.Logger) (*RelationalService, error) {
	serviceLog := logg.With("service", "RelationalService")

	driver := strings.ToLower(utils.GetEnv("RELATIONAL_DRIVER", "sqlite", logg))

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{Logger: gormLog}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			utils.GetEnv("POSTGRES_USER", "postgres", logg),
			utils.GetEnv("POSTGRES_PASSWORD", "", logg),
			utils.GetEnv("POSTGRES_HOST", "localhost", logg),
			utils.GetEnv("POSTGRES_PORT", "5432", logg),
			utils.GetEnv("POSTGRES_NAME", "lumenlearn", logg),
		)
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "app.db", logg)
		db, err = gorm.Open(sqlite.Open(path), cfg)
	default:
		return nil, fmt.Errorf("unknown RELATIONAL_DRIVER %q (want sqlite or postgres)", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relational store (%s): %w", driver, err)
	}

	serviceLog.Info("Connected to relational store", "driver", driver)
	return &RelationalService{db: db, log: serviceLog}, nil
}

func (s *RelationalService) AutoMigrateAll() error {
	s.log.Info("Auto migrating relational tables...")
	if err := repos.AutoMigrate(s.db); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

func (s *RelationalService) DB() *gorm.DB { return s.db }

func (s *RelationalService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
