package domain

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPostNotFound     = errors.New("post not found")
)
