package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lumenlearn/lumenlearn-backend/internal/db"
	httpX "github.com/lumenlearn/lumenlearn-backend/internal/http"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	Engine   db.Engine
	Server   *httpX.Server
	Cfg      Config
	Repos    Repos
	Services Services

	relational *db.RelationalService
	document   *db.MongoService
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	engine, err := db.ActiveEngine(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	a := &App{
		Log:    log,
		Engine: engine,
		Cfg:    cfg,
	}

	var reposet Repos
	switch engine {
	case db.EngineRelational:
		rel, err := db.NewRelationalService(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init relational storage: %w", err)
		}
		if err := rel.AutoMigrateAll(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("relational automigrate: %w", err)
		}
		a.relational = rel
		reposet = wireRelationalRepos(rel.DB(), log)
	case db.EngineDocument:
		doc, err := db.NewMongoService(log)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init document storage: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = doc.EnsureIndexes(ctx)
		cancel()
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("document indexes: %w", err)
		}
		a.document = doc
		reposet = wireDocumentRepos(doc.Database(), log)
	default:
		log.Sync()
		return nil, fmt.Errorf("unsupported storage engine %q", engine)
	}
	a.Repos = reposet

	clients, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	serviceset, err := wireServices(log, cfg, reposet, clients)
	if err != nil {
		log.Sync()
		return nil, err
	}
	a.Services = serviceset

	handlerset := wireHandlers(log, engine, serviceset)
	middleware := wireMiddleware(log, serviceset)
	a.Server = wireServer(log, handlerset, middleware)

	return a, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.relational != nil {
		if err := a.relational.Close(); err != nil {
			a.Log.Warn("Relational close failed", "error", err)
		}
		a.relational = nil
	}
	if a.document != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.document.Close(ctx); err != nil {
			a.Log.Warn("Document close failed", "error", err)
		}
		cancel()
		a.document = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
