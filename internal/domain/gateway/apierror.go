package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
)

// APIError is a non-2xx response from the remote API. The human-readable
// message is derived once, here, so no caller ever re-parses a response body
// to show an error.
type APIError struct {
	StatusCode int
	Msg        string
	Body       []byte
}

// NewAPIError builds an APIError from a response, extracting the readable
// message from the body. The extraction tries, in order: a direct "message"
// field, a "detail" or "error" string, the same fields nested one level
// deep, a list of {loc, msg} validation entries joined for display, the
// HTTP status line, and finally a generic failure message with the status
// code.
func NewAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Msg:        extractMessage(statusCode, body),
		Body:       body,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Msg, e.StatusCode)
}

// Message returns the extracted human-readable message.
func (e *APIError) Message() string {
	return e.Msg
}

// Is maps well-known status codes onto the domain sentinels, so callers can
// use errors.Is against the taxonomy without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case domainerrors.ErrQuotaExceeded:
		return e.StatusCode == http.StatusPaymentRequired
	case domainerrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domainerrors.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case domainerrors.ErrConflict:
		return e.StatusCode == http.StatusConflict
	default:
		return false
	}
}

// QuotaPayload is the structured body of a quota-exceeded rejection.
type QuotaPayload struct {
	CurrentPlan  string `json:"currentPlan"`
	UpgradePlan  string `json:"upgradePlan"`
	CurrentCount *int   `json:"currentCount"`
}

// QuotaPayload decodes the plan-limit body of a 402 rejection. The second
// return value is false for any other status or an undecodable body.
func (e *APIError) QuotaPayload() (*QuotaPayload, bool) {
	if e.StatusCode != http.StatusPaymentRequired {
		return nil, false
	}

	var payload QuotaPayload
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return nil, false
	}

	return &payload, true
}

// validationEntry is one FastAPI-style field error: {"loc": [...], "msg": "..."}.
type validationEntry struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func extractMessage(statusCode int, body []byte) string {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			if msg, ok := stringField(parsed, key); ok {
				return msg
			}
		}

		// Nested shapes: {"error": {"message": ...}} and friends.
		for _, key := range []string{"error", "detail"} {
			raw, ok := parsed[key]
			if !ok {
				continue
			}

			var nested map[string]json.RawMessage
			if err := json.Unmarshal(raw, &nested); err == nil {
				for _, nestedKey := range []string{"message", "detail", "msg"} {
					if msg, ok := stringField(nested, nestedKey); ok {
						return msg
					}
				}
			}

			if msg, ok := joinValidationEntries(raw); ok {
				return msg
			}
		}
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}

	return fmt.Sprintf("request failed (status %d)", statusCode)
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return "", false
	}

	return value, true
}

func joinValidationEntries(raw json.RawMessage) (string, bool) {
	var entries []validationEntry
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Msg == "" {
			continue
		}
		if len(entry.Loc) > 0 {
			parts = append(parts, fmt.Sprintf("%v: %s", entry.Loc[len(entry.Loc)-1], entry.Msg))

			continue
		}
		parts = append(parts, entry.Msg)
	}

	if len(parts) == 0 {
		return "", false
	}

	return strings.Join(parts, "; "), true
}
