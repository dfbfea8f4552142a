package model

import (
	"fmt"
	"slices"
	"strings"

	pkgerrors "qahub/pkg/errors"
)

// QuestionID identifies a question. Use NewQuestionID to build one from input.
type QuestionID string

// NewQuestionID validates and wraps a raw identifier.
func NewQuestionID(raw string) (QuestionID, error) {
	if strings.TrimSpace(raw) == "" {
		return "", pkgerrors.New(pkgerrors.InvalidQuestionID)
	}
	return QuestionID(raw), nil
}

func (id QuestionID) String() string {
	return string(id)
}

// Question is a single question record.
type Question struct {
	ID      QuestionID `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Tags    []string   `json:"tags,omitempty"`
}

// Clone returns a copy that shares no memory with q.
func (q Question) Clone() Question {
	q.Tags = slices.Clone(q.Tags)
	return q
}

func (q Question) String() string {
	return fmt.Sprintf("%s, title: %s, content: %s, tags: %v", q.ID, q.Title, q.Content, q.Tags)
}
