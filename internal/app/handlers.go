package app

import (
	"github.com/lumenlearn/lumenlearn-backend/internal/db"
	httpH "github.com/lumenlearn/lumenlearn-backend/internal/http/handlers"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth   *httpH.AuthHandler
	Upload *httpH.UploadHandler
	Module *httpH.ModuleHandler
	Result *httpH.ResultHandler
	Chat   *httpH.ChatHandler
	Health *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, engine db.Engine, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:   httpH.NewAuthHandler(serviceset.Auth),
		Upload: httpH.NewUploadHandler(serviceset.Upload),
		Module: httpH.NewModuleHandler(serviceset.Module),
		Result: httpH.NewResultHandler(serviceset.Result),
		Chat:   httpH.NewChatHandler(serviceset.Chat),
		Health: httpH.NewHealthHandler(engine),
	}
}
