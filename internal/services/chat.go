package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumenlearn/lumenlearn-backend/internal/clients/gemini"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
)

const chatContextLimit = 1000

type ChatService interface {
	Ask(ctx context.Context, moduleID, question string) (string, error)
}

type chatService struct {
	log        *logger.Logger
	moduleRepo repos.ModuleRepo
	ai         gemini.Client
}

func NewChatService(log *logger.Logger, moduleRepo repos.ModuleRepo, ai gemini.Client) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{
		log:        serviceLog,
		moduleRepo: moduleRepo,
		ai:         ai,
	}
}

// Ask answers a free-form question grounded in a module's content. The
// module's extracted text is truncated before prompting.
func (cs *chatService) Ask(ctx context.Context, moduleID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: a question is required", apperr.ErrValidation)
	}
	if moduleID == "" {
		return "", fmt.Errorf("%w: module_id is required", apperr.ErrValidation)
	}

	module, err := cs.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return "", err
	}

	source := firstRunes(module.PDFText, chatContextLimit)

	prompt := fmt.Sprintf(
		"You are a helpful tutor. Use the study material below to answer the student's question.\n\nTitle: %s\n\nSummary: %s\n\nSource material: %s\n\nQuestion: %s",
		module.Title, module.Content, source, question,
	)

	answer, err := cs.ai.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// firstRunes truncates on a rune boundary so a multi-byte character is never
// split at the context limit.
func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
