package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/tracing"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/lucsky/cuid"
)

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = values.DefaultRequestSource
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}

		ctx := context.WithValue(r.Context(), values.ContextTracingKey, tracingContext)
		w.Header().Set(values.HeaderRequestID, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		slog.Info("request",
			append(tracingContext.LogAttrs(),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)...,
		)
	}

	return http.HandlerFunc(fn)
}

// RecoverPanic turns a panicking handler into a generic 500.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			tc := util.GetTracingContext(r.Context())
			slog.Error("panic recovered",
				append(tc.LogAttrs(),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)...,
			)
			writeErrorResponse(w, fmt.Errorf("panic: %v", rec), values.Error, values.SystemErr)
		}()

		next.ServeHTTP(w, r)
	})
}

// RequireLogin authenticates the bearer token and stores the identity in the request context.
func (api *API) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := util.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeErrorResponse(w, nil, values.NotAuthorised, "access denied, no token provided")
			return
		}

		identity, status, message, err := api.Authenticate(token)
		if err != nil {
			writeErrorResponse(w, nil, status, message)
			return
		}

		next.ServeHTTP(w, r.WithContext(util.ContextWithIdentity(r.Context(), identity)))
	})
}
