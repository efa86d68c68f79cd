package util

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// StatusCode returns the status code represented
// by the specified status. Note that this function
// returns a status code of 200 by default
func StatusCode(status string) int {
	switch status {
	case values.Error:
		return http.StatusInternalServerError
	case values.Created:
		return http.StatusCreated
	case values.BadRequestBody, values.Conflict:
		// duplicate identities are reported as a bad request, not 409
		return http.StatusBadRequest
	case values.Unprocessable:
		return http.StatusUnprocessableEntity
	case values.NotAllowed:
		return http.StatusForbidden
	case values.NotFound:
		return http.StatusNotFound
	case values.MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case values.NotAuthorised, values.TokenExpired:
		return http.StatusUnauthorized
	default:
		return http.StatusOK
	}
}

// DecodeJSONBody ...
func DecodeJSONBody(tc *tracing.Context, body io.ReadCloser, target interface{}) error {
	if body == nil {
		return errors.Errorf("missing request body for request: %v", tc.RequestID)
	}
	defer func() {
		_ = body.Close()
	}()

	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Errorf("empty request body for request: %v", tc.RequestID)
		}
		return errors.Wrapf(err, "Error parsing json body for request: %v", tc.RequestID)
	}

	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func ContextWithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, values.ContextIdentityKey, identity)
}

// GetIdentityFromContext extracts the authenticated identity placed by RequireLogin.
func GetIdentityFromContext(ctx context.Context) (model.Identity, error) {
	identity, ok := ctx.Value(values.ContextIdentityKey).(model.Identity)
	if !ok || identity.UserID == 0 {
		return model.Identity{}, errors.New("identity not found in context")
	}
	return identity, nil
}

// GetTracingContext returns the request's tracing context, or an empty one
// when the request did not pass through RequestTracing.
func GetTracingContext(ctx context.Context) tracing.Context {
	tc, _ := ctx.Value(values.ContextTracingKey).(tracing.Context)
	return tc
}
