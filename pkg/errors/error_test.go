package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	. "qahub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_Message(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{Success, "Success"},
		{MissingParameters, "Missing parameter"},
		{QuestionNotFound, "Question not found"},
		{InvalidQuestionID, "No id provided"},
		{ErrorCode(1), "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Message())
		})
	}
}

func TestErrorCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		wantStatus int
	}{
		{Success, http.StatusOK},
		{MissingParameters, http.StatusRequestedRangeNotSatisfiable},
		{ParseError, http.StatusRequestedRangeNotSatisfiable},
		{PaginationOutOfRange, http.StatusRequestedRangeNotSatisfiable},
		{RequiredFieldEmpty, http.StatusRequestedRangeNotSatisfiable},
		{QuestionNotFound, http.StatusRequestedRangeNotSatisfiable},
		{CorsForbidden, http.StatusForbidden},
		{BodyDeserializeError, http.StatusUnprocessableEntity},
		{RouteNotFound, http.StatusNotFound},
		{InternalServerError, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.code.Message(), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.code.HTTPStatus())
		})
	}
}

func TestErrorCode_Category(t *testing.T) {
	assert.Equal(t, CategoryInput, MissingParameters.Category())
	assert.Equal(t, CategoryInput, ParseError.Category())
	assert.Equal(t, CategoryNotFound, QuestionNotFound.Category())
	assert.Equal(t, CategoryTransport, CorsForbidden.Category())
	assert.Equal(t, CategoryTransport, BodyDeserializeError.Category())
	assert.Equal(t, CategoryInternal, InternalServerError.Category())
}

func TestNew(t *testing.T) {
	err := New(QuestionNotFound)

	require.NotNil(t, err)
	assert.Equal(t, QuestionNotFound, err.Code)
	assert.Equal(t, QuestionNotFound.Message(), err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestNewf(t *testing.T) {
	err := Newf(QuestionNotFound, "question %s not found", "42")
	assert.Equal(t, "question 42 not found", err.Error())
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("lock poisoned")
	wrappedErr := Wrap(originalErr, InternalServerError)

	assert.Equal(t, InternalServerError, wrappedErr.Code)
	assert.Same(t, originalErr, wrappedErr.Unwrap())
	assert.Nil(t, Wrap(nil, InternalServerError))
}

func TestWrapRecodesCopy(t *testing.T) {
	shared := New(MissingParameters).WithDetail("param", "start")
	wrapped := Wrap(shared, ParseError)

	assert.NotSame(t, shared, wrapped)
	assert.Equal(t, ParseError, wrapped.Code)
	assert.Equal(t, shared.Error(), wrapped.Error())
	assert.Equal(t, MissingParameters, shared.Code)

	wrapped.WithDetail("param", "end")
	assert.Equal(t, "start", shared.Details["param"])
	assert.True(t, Is(shared, MissingParameters))
}

func TestError_WithDetail(t *testing.T) {
	err := New(RequiredFieldEmpty).
		WithDetail("field", "content").
		WithDetail("reason", "empty")

	assert.Equal(t, "content", err.Details["field"])
	assert.Equal(t, "empty", err.Details["reason"])
}

func TestRequiredField(t *testing.T) {
	err := RequiredField("questionId")

	assert.Equal(t, RequiredFieldEmpty, err.Code)
	assert.Equal(t, "Missing required field: questionId", err.Error())
	assert.Equal(t, "questionId", err.Details["field"])
}

func TestTransport(t *testing.T) {
	assert.Equal(t, "CORS request forbidden: origin not allowed", Transport(CorsForbidden, "origin not allowed").Error())
	assert.Equal(t, "Not Found", Transport(RouteNotFound, "").Error())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil error", err: nil, want: Success},
		{name: "custom error", err: New(QuestionNotFound), want: QuestionNotFound},
		{name: "wrapped custom error", err: fmt.Errorf("handler: %w", New(ParseError)), want: ParseError},
		{name: "standard error", err: errors.New("standard error"), want: InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := New(QuestionNotFound)

	assert.True(t, Is(err, QuestionNotFound))
	assert.False(t, Is(err, MissingParameters))
	assert.False(t, Is(nil, QuestionNotFound))
	assert.False(t, Is(errors.New("plain"), QuestionNotFound))
}

func TestGetError(t *testing.T) {
	assert.Nil(t, GetError(nil))

	plain := errors.New("boom")
	got := GetError(plain)
	assert.Equal(t, InternalServerError, got.Code)
	assert.Equal(t, "boom", got.Error())
}
