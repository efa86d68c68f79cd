package rest

import (
	"net/http"

	"github.com/hemadri138/veritas-project/internal/repository"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
)

// GetProfile returns the user behind the bearer token.
func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	identity, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	user, err := api.Users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondWithError(err, "User not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get user profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User profile retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}
