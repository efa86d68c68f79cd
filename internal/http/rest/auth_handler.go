package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/register", Handler(api.Register))
	mux.Method(http.MethodPost, "/login", Handler(api.Login))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/me", Handler(api.GetProfile))
	})
	return mux
}

func (api *API) Register(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.CreateNewUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.LoginUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}
