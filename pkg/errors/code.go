package errors

import "net/http"

// ErrorCode represents a unique error identifier
type ErrorCode int

// Category groups error codes by who produced them and how they are surfaced.
type Category int

const (
	// CategoryInternal covers everything the mapper has no specific rule for.
	CategoryInternal Category = iota
	// CategoryInput is a user-correctable request problem.
	CategoryInput
	// CategoryNotFound is a lookup miss in the store.
	CategoryNotFound
	// CategoryTransport is raised by the HTTP layer (CORS, body decoding, routing).
	CategoryTransport
)

// Error code ranges allocation:
// 10000-10099: System & Common errors
// 10300-10399: Input errors (query parameters, form fields)
// 12000-12099: Question & Answer errors
// 19000-19099: Transport errors

const (
	// ========== System & Common Errors (10000-10099) ==========

	Success             ErrorCode = 10000
	InternalServerError ErrorCode = 10001

	// ========== Input Errors (10300-10399) ==========

	MissingParameters    ErrorCode = 10300
	ParseError           ErrorCode = 10301
	PaginationOutOfRange ErrorCode = 10302
	RequiredFieldEmpty   ErrorCode = 10303
	InvalidQuestionID    ErrorCode = 10304

	// ========== Question & Answer Errors (12000-12099) ==========

	QuestionNotFound ErrorCode = 12000
	AnswerNotFound   ErrorCode = 12001

	// ========== Transport Errors (19000-19099) ==========

	CorsForbidden        ErrorCode = 19000
	BodyDeserializeError ErrorCode = 19001
	RouteNotFound        ErrorCode = 19002
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	Success:             "Success",
	InternalServerError: "Internal server error",

	MissingParameters:    "Missing parameter",
	ParseError:           "Cannot parse parameter",
	PaginationOutOfRange: "Range not satisfiable",
	RequiredFieldEmpty:   "Missing required field",
	InvalidQuestionID:    "No id provided",

	QuestionNotFound: "Question not found",
	AnswerNotFound:   "Answer not found",

	CorsForbidden:        "CORS request forbidden",
	BodyDeserializeError: "Request body deserialize error",
	RouteNotFound:        "Not Found",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// Category returns the taxonomy bucket of the code.
func (c ErrorCode) Category() Category {
	switch {
	case c >= 10300 && c < 10400:
		return CategoryInput
	case c == QuestionNotFound, c == AnswerNotFound:
		return CategoryNotFound
	case c >= 19000 && c < 19100:
		return CategoryTransport
	default:
		return CategoryInternal
	}
}

// HTTPStatus returns the HTTP status code for the error code.
//
// Input and not-found errors share 416 Range Not Satisfiable. Splitting them
// into 400/404 changes the wire contract for existing clients, so any split
// must be done together with a client release.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case Success:
		return http.StatusOK
	case CorsForbidden:
		return http.StatusForbidden
	case BodyDeserializeError:
		return http.StatusUnprocessableEntity
	case RouteNotFound:
		return http.StatusNotFound
	}
	switch c.Category() {
	case CategoryInput, CategoryNotFound:
		return http.StatusRequestedRangeNotSatisfiable
	default:
		return http.StatusNotFound
	}
}
