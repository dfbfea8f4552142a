package service

import (
	"context"

	"qahub/internal/qa/model"
	"qahub/internal/qa/repository"
	pkgerrors "qahub/pkg/errors"
)

// Form keys read by AnswerService.Add.
const (
	AnswerIDField         = "id"
	AnswerContentField    = "content"
	AnswerQuestionIDField = "questionId"
)

// AnswerService implements the answer operations.
type AnswerService struct {
	repo repository.AnswerRepository
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(repo repository.AnswerRepository) *AnswerService {
	return &AnswerService{repo: repo}
}

// Add builds an answer from form fields and stores it. The referenced
// question is not looked up.
func (s *AnswerService) Add(ctx context.Context, form map[string]string) (model.Answer, error) {
	for _, field := range []string{AnswerIDField, AnswerContentField, AnswerQuestionIDField} {
		if form[field] == "" {
			return model.Answer{}, pkgerrors.RequiredField(field)
		}
	}

	questionID, err := model.NewQuestionID(form[AnswerQuestionIDField])
	if err != nil {
		return model.Answer{}, err
	}

	answer := model.Answer{
		ID:         model.AnswerID(form[AnswerIDField]),
		Content:    form[AnswerContentField],
		QuestionID: questionID,
	}
	if err := s.repo.Insert(ctx, answer); err != nil {
		return model.Answer{}, mapStoreError(err, "add answer")
	}
	return answer, nil
}

// Get returns a stored answer.
func (s *AnswerService) Get(ctx context.Context, rawID string) (model.Answer, error) {
	a, err := s.repo.Get(ctx, model.AnswerID(rawID))
	if err != nil {
		return model.Answer{}, mapStoreError(err, "get answer")
	}
	return a, nil
}
