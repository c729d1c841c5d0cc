package db

import (
	"fmt"
	"strings"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/utils"
)

// Engine names the active storage technology. Exactly one engine is live per
// process; there is no dual-write or migration mode.
type Engine string

const (
	EngineRelational Engine = "relational"
	EngineDocument   Engine = "document"
)

func ActiveEngine(log *logger.Logger) (Engine, error) {
	raw := strings.ToLower(utils.GetEnv("STORAGE_ENGINE", string(EngineRelational), log))
	switch Engine(raw) {
	case EngineRelational, EngineDocument:
		return Engine(raw), nil
	default:
		return "", fmt.Errorf("unknown STORAGE_ENGINE %q (want %q or %q)", raw, EngineRelational, EngineDocument)
	}
}
