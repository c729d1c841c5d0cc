package services

import (
	"context"
	"fmt"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
	"github.com/lumenlearn/lumenlearn-backend/internal/repos"
)

// legacyAnswerKey grades submissions against modules that predate persisted
// quiz questions.
var legacyAnswerKey = []int{0, 1, 2, 0, 1}

type SubmitQuizInput struct {
	ModuleID  string `json:"module_id"`
	Answers   []int  `json:"answers"`
	TimeTaken *int   `json:"time_taken,omitempty"`
}

type ResultService interface {
	SubmitQuiz(ctx context.Context, accountID string, input SubmitQuizInput) (*types.Result, error)
	ListMine(ctx context.Context, accountID string) ([]*types.Result, error)
	ListForModule(ctx context.Context, moduleID string) ([]*types.Result, error)
	Analytics(ctx context.Context, accountID string) (ResultSummary, error)
}

type resultService struct {
	log        *logger.Logger
	resultRepo repos.ResultRepo
	moduleRepo repos.ModuleRepo
}

func NewResultService(log *logger.Logger, resultRepo repos.ResultRepo, moduleRepo repos.ModuleRepo) ResultService {
	serviceLog := log.With("service", "ResultService")
	return &resultService{
		log:        serviceLog,
		resultRepo: resultRepo,
		moduleRepo: moduleRepo,
	}
}

// SubmitQuiz grades the submission and records the attempt. Modules with
// persisted questions are graded against their own key; older modules fall
// back to the fixed legacy key.
func (rs *resultService) SubmitQuiz(ctx context.Context, accountID string, input SubmitQuizInput) (*types.Result, error) {
	if input.ModuleID == "" {
		return nil, fmt.Errorf("%w: module_id is required", apperr.ErrValidation)
	}

	module, err := rs.moduleRepo.GetByID(ctx, input.ModuleID)
	if err != nil {
		return nil, err
	}

	key := answerKeyFor(module)
	score, err := Score(input.Answers, key)
	if err != nil {
		return nil, err
	}

	result, err := rs.resultRepo.Create(ctx, &types.Result{
		AccountID:      accountID,
		ModuleID:       module.ID,
		Score:          score,
		TotalQuestions: len(key),
		TimeTaken:      input.TimeTaken,
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("Quiz recorded", "result_id", result.ID, "module_id", module.ID, "score", score)
	return result, nil
}

func (rs *resultService) ListMine(ctx context.Context, accountID string) ([]*types.Result, error) {
	return rs.resultRepo.GetByOwner(ctx, accountID)
}

func (rs *resultService) ListForModule(ctx context.Context, moduleID string) ([]*types.Result, error) {
	return rs.resultRepo.GetByModule(ctx, moduleID)
}

func (rs *resultService) Analytics(ctx context.Context, accountID string) (ResultSummary, error) {
	results, err := rs.resultRepo.GetByOwner(ctx, accountID)
	if err != nil {
		return ResultSummary{}, err
	}
	return AnalyzeResults(results), nil
}

func answerKeyFor(module *types.Module) []int {
	if len(module.MCQs) == 0 {
		return legacyAnswerKey
	}
	key := make([]int, len(module.MCQs))
	for i, q := range module.MCQs {
		key[i] = q.Correct
	}
	return key
}
