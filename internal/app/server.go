package app

import (
	httpX "github.com/lumenlearn/lumenlearn-backend/internal/http"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

func wireServer(log *logger.Logger, handlerset Handlers, middleware Middleware) *httpX.Server {
	return httpX.NewServer(httpX.RouterConfig{
		Log:            log,
		AuthHandler:    handlerset.Auth,
		AuthMiddleware: middleware.Auth,
		UploadHandler:  handlerset.Upload,
		ModuleHandler:  handlerset.Module,
		ResultHandler:  handlerset.Result,
		ChatHandler:    handlerset.Chat,
		HealthHandler:  handlerset.Health,
	})
}
