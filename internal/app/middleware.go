package app

import (
	httpMW "github.com/lumenlearn/lumenlearn-backend/internal/http/middleware"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, serviceset.Auth),
	}
}
