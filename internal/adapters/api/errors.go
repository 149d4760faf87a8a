package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is the normalized shape every transport or server failure is
// reduced to before it leaves this package. Detail carries the server's
// `{"detail": "..."}` message when one was sent.
type Error struct {
	Detail string
	Status int
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// Detail extracts the display message from any error returned by this
// package. Non-API errors fall back to their plain Error string.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// responseError normalizes a non-2xx server response.
func responseError(status int, body []byte) *Error {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &Error{Detail: payload.Detail, Status: status}
	}

	detail := http.StatusText(status)
	if detail == "" {
		detail = "unexpected server error"
	}
	return &Error{Detail: detail, Status: status}
}

// transportError normalizes network failures and timeouts. Timeouts are
// treated like any other unreachable-server condition: never retried.
func transportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Detail: "request timed out", Status: http.StatusInternalServerError}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Detail: "request canceled", Status: http.StatusInternalServerError}
	}

	var urlTimeout interface{ Timeout() bool }
	if errors.As(err, &urlTimeout) && urlTimeout.Timeout() {
		return &Error{Detail: "request timed out", Status: http.StatusInternalServerError}
	}

	return &Error{Detail: "network error: unable to reach the server", Status: http.StatusInternalServerError}
}
