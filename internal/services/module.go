package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumenlearn/lumenlearn-backend/internal/clients/gemini"
	"github.com/lumenlearn/lumenlearn-backend/internal/clients/youtube"
	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
)

type CreateModuleInput struct {
	Title   string
	Content string
	PDFText string
	VideoID string
}

// GeneratedModule bundles the persisted module with the quiz questions and
// video reference produced by the AI pipeline.
type GeneratedModule struct {
	Module  *types.Module `json:"module"`
	MCQs    []types.MCQ   `json:"mcqs"`
	VideoID string        `json:"video_id,omitempty"`
}

type ModuleService interface {
	Create(ctx context.Context, accountID string, input CreateModuleInput) (*types.Module, error)
	GetByID(ctx context.Context, id string) (*types.Module, error)
	ListOwn(ctx context.Context, accountID string) ([]*types.Module, error)
	GenerateFromText(ctx context.Context, accountID, extractedText string) (*GeneratedModule, error)
}

type moduleService struct {
	log        *logger.Logger
	moduleRepo repos.ModuleRepo
	ai         gemini.Client
	video      youtube.Client
}

func NewModuleService(log *logger.Logger, moduleRepo repos.ModuleRepo, ai gemini.Client, video youtube.Client) ModuleService {
	serviceLog := log.With("service", "ModuleService")
	return &moduleService{
		log:        serviceLog,
		moduleRepo: moduleRepo,
		ai:         ai,
		video:      video,
	}
}

func (ms *moduleService) Create(ctx context.Context, accountID string, input CreateModuleInput) (*types.Module, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: a title is required", apperr.ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrValidation)
	}
	return ms.moduleRepo.Create(ctx, &types.Module{
		AccountID: accountID,
		Title:     input.Title,
		Content:   input.Content,
		PDFText:   input.PDFText,
		VideoID:   input.VideoID,
	})
}

func (ms *moduleService) GetByID(ctx context.Context, id string) (*types.Module, error) {
	return ms.moduleRepo.GetByID(ctx, id)
}

func (ms *moduleService) ListOwn(ctx context.Context, accountID string) ([]*types.Module, error) {
	return ms.moduleRepo.GetByOwner(ctx, accountID)
}

// GenerateFromText runs the AI pipeline: summarize the extracted text into a
// module with quiz questions, look up one matching video, persist the lot.
// Each outbound call is terminal on failure; nothing is retried.
func (ms *moduleService) GenerateFromText(ctx context.Context, accountID, extractedText string) (*GeneratedModule, error) {
	if strings.TrimSpace(extractedText) == "" {
		return nil, fmt.Errorf("%w: extracted text is required", apperr.ErrValidation)
	}

	generated, err := ms.ai.GenerateModule(ctx, extractedText)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(generated.Title) == "" || strings.TrimSpace(generated.Content) == "" {
		return nil, fmt.Errorf("%w: completion is missing title or content", apperr.ErrUpstream)
	}

	videoID, err := ms.video.Search(ctx, generated.Title)
	if err != nil {
		return nil, err
	}

	module, err := ms.moduleRepo.Create(ctx, &types.Module{
		AccountID: accountID,
		Title:     generated.Title,
		Content:   generated.Content,
		PDFText:   extractedText,
		VideoID:   videoID,
		MCQs:      generated.MCQs,
	})
	if err != nil {
		return nil, err
	}
	ms.log.Info("AI module generated", "module_id", module.ID, "mcqs", len(generated.MCQs), "video_id", videoID)

	return &GeneratedModule{
		Module:  module,
		MCQs:    generated.MCQs,
		VideoID: videoID,
	}, nil
}
