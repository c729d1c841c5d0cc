package app

import (
	"time"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/utils"
)

type Config struct {
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	UploadDir      string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 1800, log)
	uploadDir := utils.GetEnv("UPLOAD_DIR", "storage/uploads", log)
	return Config{
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		UploadDir:      uploadDir,
	}
}
