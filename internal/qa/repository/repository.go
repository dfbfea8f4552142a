package repository

import (
	"context"
	"errors"

	"qahub/internal/qa/model"
)

var (
	// ErrQuestionNotFound is returned when no question is stored under the id.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound is returned when no answer is stored under the id.
	ErrAnswerNotFound = errors.New("answer not found")
)

// QuestionRepository is the question table contract.
type QuestionRepository interface {
	// List returns a snapshot of every question ordered by id.
	List(ctx context.Context) ([]model.Question, error)
	// Get returns the question stored under id.
	Get(ctx context.Context, id model.QuestionID) (model.Question, error)
	// Insert stores q under q.ID, replacing any existing record.
	Insert(ctx context.Context, q model.Question) error
	// Update replaces the record stored under id with q. The key stays id
	// even when q.ID differs.
	Update(ctx context.Context, id model.QuestionID, q model.Question) error
	// Delete removes the record stored under id.
	Delete(ctx context.Context, id model.QuestionID) error
}

// AnswerRepository is the answer table contract.
type AnswerRepository interface {
	Insert(ctx context.Context, a model.Answer) error
	Get(ctx context.Context, id model.AnswerID) (model.Answer, error)
}
