package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Init builds the router: permissive CORS for the mobile client, a
// request-scoped logger with trace id, request logging, panic recovery, and
// the single dispatch route the historical serverless deployment exposed.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)

	router.HandleFunc("/api", h.dispatch)
	router.HandleFunc("/api/", h.dispatch)

	router.NotFound(h.endpointNotFound)

	return router
}

// dispatch selects exactly one handler from the (endpoint, method) pair.
// OPTIONS short-circuits to an empty 200 before any handler runs; anything
// without a match falls through to the 404 envelope, including known
// endpoints called with the wrong method.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	endpoint := r.URL.Query().Get("endpoint")

	switch {
	case endpoint == "test" && r.Method == http.MethodGet:
		h.diagnostics(w, r)
	case endpoint == "signup" && r.Method == http.MethodPost:
		h.signup(w, r)
	case endpoint == "login" && r.Method == http.MethodPost:
		h.login(w, r)
	case endpoint == "create-qr" && r.Method == http.MethodPost && h.qrEnabled:
		h.createQR(w, r)
	case endpoint == "check-qr" && r.Method == http.MethodGet && h.qrEnabled:
		h.checkQR(w, r)
	default:
		h.endpointNotFound(w, r)
	}
}
