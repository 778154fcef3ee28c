package zeroentropy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the ZeroEntropy API. Message carries
// the remote error text verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zeroentropy: %s (status %d)", e.Message, e.StatusCode)
}

func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsAuthFailure(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// errorBody is the API's error envelope. detail is usually a string but
// validation failures return a structured list.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func decodeAPIError(statusCode int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && len(eb.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(eb.Detail, &detail); err == nil {
			return &APIError{StatusCode: statusCode, Message: detail}
		}
		return &APIError{StatusCode: statusCode, Message: string(eb.Detail)}
	}
	return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}
