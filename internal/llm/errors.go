package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// ErrorKind classifies provider failures so the request handler can map
// them to distinct status codes.
type ErrorKind int

const (
	// ErrorUnknown is any failure the taxonomy does not recognize.
	ErrorUnknown ErrorKind = iota
	// ErrorAuth is an authentication or API key failure.
	ErrorAuth
	// ErrorRateLimited is a rate-limit or quota failure.
	ErrorRateLimited
	// ErrorContentBlocked is a content-safety rejection.
	ErrorContentBlocked
)

// ClassifyError maps a provider error onto the taxonomy. Structured errors
// (HTTP status codes, typed safety errors) are checked first; matching on
// the error text is a documented fallback for providers that surface only
// free-text messages.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorUnknown
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return ErrorContentBlocked
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrorAuth
		case http.StatusTooManyRequests:
			return ErrorRateLimited
		}
	}

	var oerr *openai.APIError
	if errors.As(err, &oerr) {
		switch oerr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrorAuth
		case http.StatusTooManyRequests:
			return ErrorRateLimited
		}
	}

	return classifyByMessage(err.Error())
}

func classifyByMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case contains(lower, "safety", "content_filter", "blocked"):
		return ErrorContentBlocked
	case contains(lower, "rate limit", "quota", "resource_exhausted", "overloaded"):
		return ErrorRateLimited
	case contains(lower, "api key", "authentication", "unauthorized", "invalid_argument", "permission denied"):
		return ErrorAuth
	default:
		return ErrorUnknown
	}
}

func contains(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
