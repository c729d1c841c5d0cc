package services

import (
	"fmt"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

// Score grades submitted answers against the answer key. Both sequences must
// have the same length; the result is 100 * matches / total.
func Score(answers, key []int) (float64, error) {
	if len(answers) != len(key) {
		return 0, fmt.Errorf("%w: answer count mismatch: got %d, want %d", apperr.ErrValidation, len(answers), len(key))
	}
	if len(key) == 0 {
		return 0, fmt.Errorf("%w: empty answer key", apperr.ErrValidation)
	}
	matches := 0
	for i := range key {
		if answers[i] == key[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(key)) * 100, nil
}

// ResultSummary aggregates a user's quiz results.
type ResultSummary struct {
	AverageScore  float64 `json:"average_score"`
	TotalAttempts int     `json:"total_attempts"`
	BestScore     float64 `json:"best_score"`
	LatestScore   float64 `json:"latest_score"`
}

// AnalyzeResults summarizes results in submission order. An empty slice
// yields a zero-valued summary rather than an error.
func AnalyzeResults(results []*types.Result) ResultSummary {
	if len(results) == 0 {
		return ResultSummary{}
	}
	var sum, best float64
	for _, r := range results {
		sum += r.Score
		if r.Score > best {
			best = r.Score
		}
	}
	return ResultSummary{
		AverageScore:  sum / float64(len(results)),
		TotalAttempts: len(results),
		BestScore:     best,
		LatestScore:   results[len(results)-1].Score,
	}
}
