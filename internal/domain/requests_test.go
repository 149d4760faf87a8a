package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request SignUpRequest
		wantErr string
	}{
		{
			name:    "valid",
			request: SignUpRequest{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "correcthorse"},
		},
		{
			name:    "short name",
			request: SignUpRequest{FullName: "A", Email: "ada@example.com", Password: "correcthorse"},
			wantErr: "fullname must be at least 2 characters",
		},
		{
			name:    "bad email",
			request: SignUpRequest{FullName: "Ada Lovelace", Email: "not-an-email", Password: "correcthorse"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			request: SignUpRequest{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "long password",
			request: SignUpRequest{FullName: "Ada Lovelace", Email: "ada@example.com", Password: strings.Repeat("x", 129)},
			wantErr: "password must be at most 128 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCredentialsValidation(t *testing.T) {
	assert.NoError(t, Credentials{Email: "ada@example.com", Password: "pw"}.Validate())
	assert.Error(t, Credentials{Email: "", Password: "pw"}.Validate())
	assert.Error(t, Credentials{Email: "ada@example.com"}.Validate())
}

func TestPostDraftValidation(t *testing.T) {
	assert.NoError(t, PostDraft{Description: "hello"}.Validate())
	assert.Error(t, PostDraft{}.Validate())
	assert.Error(t, PostDraft{Description: strings.Repeat("x", 2001)}.Validate())
}
