package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
)

func (api *API) ClaimRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.GetRecentClaims))
	mux.Method(http.MethodGet, "/{claimID}", Handler(api.GetClaimByID))
	mux.Method(http.MethodGet, "/{claimID}/evidence", Handler(api.GetEvidence))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateClaim))
		r.Method(http.MethodPost, "/{claimID}/evidence", Handler(api.AddEvidence))
	})

	return mux
}

func (api *API) CreateClaim(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	identity, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	var req model.CreateClaimRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	claim, status, message, err := api.SubmitClaimHelper(r.Context(), identity, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       claim,
	}
}

func (api *API) GetRecentClaims(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	params, err := parseListClaimsParams(r.URL.Query(), api.Config.MaxPageSize)
	if err != nil {
		return respondWithError(err, err.Error(), values.BadRequestBody, &tc)
	}

	claims, status, message, err := api.ListRecentClaimsHelper(r.Context(), params)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       claims,
	}
}

func (api *API) GetClaimByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	claimID := parseClaimID(r)

	detail, status, message, err := api.GetClaimDetailHelper(r.Context(), claimID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       detail,
	}
}

func (api *API) GetEvidence(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	evidence, status, message, err := api.ListEvidenceHelper(r.Context(), parseClaimID(r))
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       evidence,
	}
}

func (api *API) AddEvidence(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	identity, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	var req model.CreateEvidenceRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	evidence, status, message, err := api.AddEvidenceHelper(r.Context(), identity, parseClaimID(r), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       evidence,
	}
}

// parseClaimID returns 0 for ids that cannot name a claim; lookups treat 0 as not found.
func parseClaimID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "claimID"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// parseListClaimsParams applies the 20/0 defaults, rejects malformed or
// negative values and clamps limit to maxLimit.
func parseListClaimsParams(q url.Values, maxLimit int) (model.ListClaimsParams, error) {
	params := model.ListClaimsParams{
		Limit:  model.DefaultPageLimit,
		Offset: model.DefaultPageOffset,
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return model.ListClaimsParams{}, errors.New("limit must be a positive integer")
		}
		params.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return model.ListClaimsParams{}, errors.New("offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	if maxLimit > 0 && params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	return params, nil
}
