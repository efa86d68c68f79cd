package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hemadri138/veritas-project/config"
	deps "github.com/hemadri138/veritas-project/internal/debs"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies

	Users    UserStore
	Claims   ClaimStore
	Votes    VoteTallier
	Evidence EvidenceStore
}

// New wires the API to the repositories held by d.
func New(cfg *config.Config, d *deps.Dependencies) *API {
	return &API{
		Config:   cfg,
		Deps:     d,
		Users:    d.Users,
		Claims:   d.Claims,
		Votes:    d.Votes,
		Evidence: d.Evidence,
	}
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)
	mux.Use(RecoverPanic)

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, nil, values.NotFound, "route not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, nil, values.MethodNotAllowed, "method not allowed")
	})

	mux.Method(http.MethodGet, "/", Handler(api.Root))

	mux.Route("/api", func(r chi.Router) {
		r.Mount("/users", api.UserRoutes())
		r.Mount("/claims", api.ClaimRoutes())
	})

	return mux
}

func (api *API) Root(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "Veritas API is running",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) Shutdown() error {
	if api.Server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	return api.Server.Shutdown(ctx)
}
