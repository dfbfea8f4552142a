package errors

import stderrors "errors"

// Reply is the status and plain-text body produced for a failed request.
type Reply struct {
	Status int
	Body   string
}

// Map translates an error into its HTTP reply. It is total: coded errors use
// the status table from HTTPStatus and their own message, anything else is
// reported as 404 with the raw diagnostic.
func Map(err error) Reply {
	if err == nil {
		return Reply{Status: Success.HTTPStatus(), Body: Success.Message()}
	}

	var e *Error
	if !stderrors.As(err, &e) {
		return Reply{Status: InternalServerError.HTTPStatus(), Body: err.Error()}
	}
	return Reply{Status: e.Code.HTTPStatus(), Body: e.Error()}
}
