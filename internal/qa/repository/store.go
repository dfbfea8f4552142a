package repository

import (
	"cmp"
	"context"
	"slices"

	"qahub/internal/qa/model"
	"qahub/pkg/utils/logger"

	"go.uber.org/zap"
)

// Store holds the question and answer tables. A *Store is the shared handle:
// every copy of the pointer sees the same tables. The two tables lock
// independently, so nothing spanning both is atomic.
type Store struct {
	questions *QuestionStore
	answers   *AnswerStore
}

// Option configures a Store at construction.
type Option func(*Store)

// WithQuestions preloads the question table. Later entries win on duplicate ids.
func WithQuestions(questions []model.Question) Option {
	return func(s *Store) {
		for _, q := range questions {
			s.questions.table.items[q.ID] = q.Clone()
		}
	}
}

// NewStore creates an empty store and applies opts.
func NewStore(opts ...Option) *Store {
	s := &Store{
		questions: &QuestionStore{table: newTable[model.QuestionID](model.Question.Clone)},
		answers:   &AnswerStore{table: newTable[model.AnswerID, model.Answer](nil)},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Questions returns the question table.
func (s *Store) Questions() *QuestionStore {
	return s.questions
}

// Answers returns the answer table.
func (s *Store) Answers() *AnswerStore {
	return s.answers
}

// QuestionStore implements QuestionRepository over an in-memory table.
type QuestionStore struct {
	table *table[model.QuestionID, model.Question]
}

var _ QuestionRepository = (*QuestionStore)(nil)

// List returns a snapshot ordered by id so paging over it is repeatable.
func (s *QuestionStore) List(ctx context.Context) ([]model.Question, error) {
	questions, err := s.table.values(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(questions, func(a, b model.Question) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return questions, nil
}

func (s *QuestionStore) Get(ctx context.Context, id model.QuestionID) (model.Question, error) {
	q, ok, err := s.table.get(ctx, id)
	if err != nil {
		return model.Question{}, err
	}
	if !ok {
		return model.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func (s *QuestionStore) Insert(ctx context.Context, q model.Question) error {
	if err := s.table.put(ctx, q.ID, q); err != nil {
		return err
	}
	logger.Debug(ctx, "question stored", zap.String("question_id", q.ID.String()))
	return nil
}

func (s *QuestionStore) Update(ctx context.Context, id model.QuestionID, q model.Question) error {
	ok, err := s.table.replace(ctx, id, q)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuestionNotFound
	}
	if q.ID != id {
		logger.Debug(ctx, "question replaced under a different key",
			zap.String("key", id.String()), zap.String("question_id", q.ID.String()))
	}
	return nil
}

func (s *QuestionStore) Delete(ctx context.Context, id model.QuestionID) error {
	ok, err := s.table.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuestionNotFound
	}
	logger.Debug(ctx, "question deleted", zap.String("question_id", id.String()))
	return nil
}

// Len returns the number of stored questions.
func (s *QuestionStore) Len() int {
	return s.table.len()
}

// AnswerStore implements AnswerRepository over an in-memory table.
type AnswerStore struct {
	table *table[model.AnswerID, model.Answer]
}

var _ AnswerRepository = (*AnswerStore)(nil)

func (s *AnswerStore) Insert(ctx context.Context, a model.Answer) error {
	if err := s.table.put(ctx, a.ID, a); err != nil {
		return err
	}
	logger.Debug(ctx, "answer stored",
		zap.String("answer_id", a.ID.String()), zap.String("question_id", a.QuestionID.String()))
	return nil
}

func (s *AnswerStore) Get(ctx context.Context, id model.AnswerID) (model.Answer, error) {
	a, ok, err := s.table.get(ctx, id)
	if err != nil {
		return model.Answer{}, err
	}
	if !ok {
		return model.Answer{}, ErrAnswerNotFound
	}
	return a, nil
}

// Len returns the number of stored answers.
func (s *AnswerStore) Len() int {
	return s.table.len()
}
