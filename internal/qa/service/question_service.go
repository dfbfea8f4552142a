package service

import (
	"context"
	"errors"
	"fmt"

	"qahub/internal/qa/model"
	"qahub/internal/qa/pagination"
	"qahub/internal/qa/repository"
	pkgerrors "qahub/pkg/errors"
	"qahub/pkg/utils/logger"

	"go.uber.org/zap"
)

// QuestionService implements the question operations.
type QuestionService struct {
	repo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(repo repository.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

// List returns every question when params is empty, otherwise the window
// selected by the start/end parameters.
func (s *QuestionService) List(ctx context.Context, params map[string]string) ([]model.Question, error) {
	if len(params) == 0 {
		questions, err := s.repo.List(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(fmt.Errorf("list questions failed: %w", err), pkgerrors.InternalServerError)
		}
		return questions, nil
	}

	page, err := pagination.Extract(params)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(fmt.Errorf("list questions failed: %w", err), pkgerrors.InternalServerError)
	}

	saturated := page.Saturate(uint(len(questions)))
	if saturated != page {
		logger.Debug(ctx, "pagination saturated",
			zap.Uint("start", saturated.Start),
			zap.Uint("end", saturated.End),
			zap.Int("length", len(questions)),
		)
	}
	return pagination.Window(questions, saturated)
}

// Get returns a single question.
func (s *QuestionService) Get(ctx context.Context, rawID string) (model.Question, error) {
	q, err := s.repo.Get(ctx, model.QuestionID(rawID))
	if err != nil {
		return model.Question{}, mapStoreError(err, "get question")
	}
	return q, nil
}

// Add stores q, replacing any question with the same id.
func (s *QuestionService) Add(ctx context.Context, q model.Question) error {
	if _, err := model.NewQuestionID(q.ID.String()); err != nil {
		return err
	}
	if err := s.repo.Insert(ctx, q); err != nil {
		return mapStoreError(err, "add question")
	}
	return nil
}

// Update replaces the question stored under rawID with q.
func (s *QuestionService) Update(ctx context.Context, rawID string, q model.Question) error {
	if err := s.repo.Update(ctx, model.QuestionID(rawID), q); err != nil {
		return mapStoreError(err, "update question")
	}
	return nil
}

// Delete removes the question stored under rawID.
func (s *QuestionService) Delete(ctx context.Context, rawID string) error {
	if err := s.repo.Delete(ctx, model.QuestionID(rawID)); err != nil {
		return mapStoreError(err, "delete question")
	}
	return nil
}

func mapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrQuestionNotFound):
		return pkgerrors.New(pkgerrors.QuestionNotFound)
	case errors.Is(err, repository.ErrAnswerNotFound):
		return pkgerrors.New(pkgerrors.AnswerNotFound)
	default:
		return pkgerrors.Wrap(fmt.Errorf("%s failed: %w", op, err), pkgerrors.InternalServerError)
	}
}
