package app

import (
	"fmt"

	"github.com/lumenlearn/lumenlearn-backend/internal/clients/gemini"
	"github.com/lumenlearn/lumenlearn-backend/internal/clients/youtube"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type Clients struct {
	AI    gemini.Client
	Video youtube.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	ai, err := gemini.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init gemini client: %w", err)
	}
	video, err := youtube.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init youtube client: %w", err)
	}
	return Clients{AI: ai, Video: video}, nil
}
