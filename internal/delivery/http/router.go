package http

import (
	"net/http"

	"appointment-data-proxy/internal/delivery/http/handler"
	"appointment-data-proxy/internal/delivery/http/middleware"
	"appointment-data-proxy/pkg/jwt"

	"github.com/gorilla/mux"
)

// resourceHandler is implemented by every handler.EntityHandler instantiation.
type resourceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	Patient          *handler.PatientHandler
	Practice         *handler.PracticeHandler
	FixedRemedy      *handler.FixedRemedyHandler
	Therapist        *handler.TherapistHandler
	IndividualRemedy *handler.IndividualRemedyHandler
	Appointment      *handler.AppointmentHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Central database (general scope)
	r.mount(api, "/patients", jwt.ScopeGeneral, r.handlers.Patient)
	r.mount(api, "/practices", jwt.ScopeGeneral, r.handlers.Practice)
	r.mount(api, "/fixed-remedies", jwt.ScopeGeneral, r.handlers.FixedRemedy)

	// Company database (customer scope)
	r.mount(api, "/therapists", jwt.ScopeCustomer, r.handlers.Therapist)
	r.mount(api, "/individual-remedies", jwt.ScopeCustomer, r.handlers.IndividualRemedy)
	r.mount(api, "/appointments", jwt.ScopeCustomer, r.handlers.Appointment)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) mount(api *mux.Router, prefix, scope string, h resourceHandler) {
	sub := api.PathPrefix(prefix).Subrouter()
	sub.Use(r.authMiddleware.Authenticate)
	sub.Use(middleware.RequireScope(scope))

	sub.HandleFunc("", h.Create).Methods(http.MethodPost)
	sub.HandleFunc("", h.Update).Methods(http.MethodPut)
	sub.HandleFunc("/stream", h.Stream).Methods(http.MethodPost)
	sub.HandleFunc("/{"+handler.KeyVar+"}", h.Get).Methods(http.MethodGet)
	sub.HandleFunc("/{"+handler.KeyVar+"}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
