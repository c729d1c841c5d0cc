package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lumenlearn/lumenlearn-backend/internal/clients/gemini"
	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

type fakeAIClient struct {
	lastPrompt string
	reply      string
}

func (f *fakeAIClient) GenerateModule(ctx context.Context, extractedText string) (*gemini.GeneratedModule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, nil
}

func TestAskGroundsPromptInModule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	moduleRepo := newFakeModuleRepo()
	ai := &fakeAIClient{reply: "  The answer.  "}
	svc := NewChatService(testLog(t), moduleRepo, ai)

	module, err := moduleRepo.Create(ctx, &types.Module{
		AccountID: "1",
		Title:     "Cells",
		Content:   "Summary",
		PDFText:   "mitochondria are the powerhouse",
	})
	if err != nil {
		t.Fatalf("create module: %v", err)
	}

	answer, err := svc.Ask(ctx, module.ID, "what is the powerhouse?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "The answer." {
		t.Fatalf("unexpected answer: got=%q", answer)
	}
	for _, want := range []string{"Cells", "Summary", "mitochondria", "what is the powerhouse?"} {
		if !strings.Contains(ai.lastPrompt, want) {
			t.Fatalf("prompt missing %q: %q", want, ai.lastPrompt)
		}
	}
}

func TestAskTruncatesSourceOnRuneBoundary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	moduleRepo := newFakeModuleRepo()
	ai := &fakeAIClient{reply: "ok"}
	svc := NewChatService(testLog(t), moduleRepo, ai)

	// One ASCII byte then multi-byte runes: a byte-index cut at the limit
	// would land mid-rune.
	source := "a" + strings.Repeat("é", chatContextLimit)
	module, err := moduleRepo.Create(ctx, &types.Module{
		AccountID: "1",
		Title:     "T",
		Content:   "C",
		PDFText:   source,
	})
	if err != nil {
		t.Fatalf("create module: %v", err)
	}

	if _, err := svc.Ask(ctx, module.ID, "q?"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !utf8.ValidString(ai.lastPrompt) {
		t.Fatal("prompt contains a split rune")
	}
	if strings.Contains(ai.lastPrompt, source) {
		t.Fatal("expected the source material to be truncated")
	}
}

func TestAskUnknownModule(t *testing.T) {
	t.Parallel()
	svc := NewChatService(testLog(t), newFakeModuleRepo(), &fakeAIClient{})

	_, err := svc.Ask(context.Background(), "404", "q?")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	t.Parallel()
	svc := NewChatService(testLog(t), newFakeModuleRepo(), &fakeAIClient{})

	_, err := svc.Ask(context.Background(), "1", "   ")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
