package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassifyErrorStructured(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "googleapi unauthorized",
			err:  &googleapi.Error{Code: 401, Message: "request had invalid credentials"},
			want: ErrorAuth,
		},
		{
			name: "googleapi forbidden",
			err:  &googleapi.Error{Code: 403, Message: "permission denied"},
			want: ErrorAuth,
		},
		{
			name: "googleapi too many requests",
			err:  &googleapi.Error{Code: 429, Message: "resource exhausted"},
			want: ErrorRateLimited,
		},
		{
			name: "wrapped googleapi error",
			err:  fmt.Errorf("completion failed: %w", &googleapi.Error{Code: 429}),
			want: ErrorRateLimited,
		},
		{
			name: "openai unauthorized",
			err:  &openai.APIError{HTTPStatusCode: 401, Message: "invalid api key"},
			want: ErrorAuth,
		},
		{
			name: "openai rate limited",
			err:  &openai.APIError{HTTPStatusCode: 429, Message: "slow down"},
			want: ErrorRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestClassifyErrorMessageFallback(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want ErrorKind
	}{
		{"api key", "API key not valid. Please pass a valid API key.", ErrorAuth},
		{"authentication", "authentication failure", ErrorAuth},
		{"invalid argument", "INVALID_ARGUMENT: bad request", ErrorAuth},
		{"rate limit", "rate limit exceeded for model", ErrorRateLimited},
		{"quota", "quota exceeded for project", ErrorRateLimited},
		{"resource exhausted", "RESOURCE_EXHAUSTED: try later", ErrorRateLimited},
		{"safety", "candidate blocked due to SAFETY", ErrorContentBlocked},
		{"content filter", "finish_reason: content_filter", ErrorContentBlocked},
		{"unclassified", "connection reset by peer", ErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(errors.New(tt.msg)))
		})
	}
}

func TestClassifyErrorNil(t *testing.T) {
	assert.Equal(t, ErrorUnknown, ClassifyError(nil))
}
