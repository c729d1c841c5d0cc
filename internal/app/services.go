package app

import (
	"fmt"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/services"
)

type Services struct {
	Auth   services.AuthService
	Module services.ModuleService
	Result services.ResultService
	Chat   services.ChatService
	Upload services.UploadService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	uploadService, err := services.NewUploadService(log, cfg.UploadDir)
	if err != nil {
		return Services{}, fmt.Errorf("init upload service: %w", err)
	}

	return Services{
		Auth:   services.NewAuthService(log, reposet.Account, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Module: services.NewModuleService(log, reposet.Module, clients.AI, clients.Video),
		Result: services.NewResultService(log, reposet.Result, reposet.Module),
		Chat:   services.NewChatService(log, reposet.Module, clients.AI),
		Upload: uploadService,
	}, nil
}
