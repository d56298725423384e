package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "requestID"
	RequestIDHeader                = "X-Request-ID"
)

const maxBodyBytes = 1 << 20

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

// DecodeJSONBody decodes a single JSON object from the request body into dst,
// rejecting unknown fields and bodies over 1 MiB.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("request body contains malformed JSON at position %d", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			return fmt.Errorf("request body has an invalid value for field %q", typeErr.Field)
		case errors.As(err, &maxErr):
			return errors.New("request body must not be larger than 1MB")
		default:
			return fmt.Errorf("decode request body: %w", err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON object")
	}
	return nil
}

func Success(data interface{}, requestID string) map[string]interface{} {
	return map[string]interface{}{
		"status":     "success",
		"data":       data,
		"request_id": requestID,
	}
}

func Fail(message string, requestID string) map[string]interface{} {
	return map[string]interface{}{
		"status":     "error",
		"message":    message,
		"request_id": requestID,
	}
}
