package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	_ "mmgp/docs"
	"mmgp/internal/config"
	"mmgp/internal/service"
	"mmgp/internal/transport/rest/handler"
	"mmgp/internal/transport/rest/middleware"
	"mmgp/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config             *config.Config
	AuthService        *service.AuthService
	WizardService      *service.WizardService
	SubmissionService  *service.SubmissionService
	HistoryService     *service.HistoryService
	ReportService      *service.ReportService
	DiagnosticsService *service.DiagnosticsService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionnaireHandler := handler.NewQuestionnaireHandler()
	wizardHandler := handler.NewWizardHandler(c.WizardService)
	responseHandler := handler.NewResponseHandler(c.SubmissionService, c.HistoryService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	diagHandler := handler.NewDiagnosticsHandler(c.DiagnosticsService)
	wsHandler := ws.NewHandler(c.WSHub, c.WizardService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first, then request logging
	r.Use(corsMiddleware(c.Config))
	r.Use(middleware.Logger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/signup", authHandler.SignUp).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/diagnostics/connection", diagHandler.Connection).Methods("GET", "OPTIONS")

	// WebSocket route (the session id is the capability)
	v1.HandleFunc("/ws/wizard/{sessionId}", wsHandler.WizardWS).Methods("GET")

	// Optional-auth routes: a token, when sent, identifies the respondent
	anyone := v1.NewRoute().Subrouter()
	anyone.Use(authMW.OptionalUser)

	anyone.HandleFunc("/auth/check", authHandler.Check).Methods("GET", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions", wizardHandler.Start).Methods("POST", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}", wizardHandler.Get).Methods("GET", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/email", wizardHandler.UpdateEmail).Methods("PUT", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/classification/{field}", wizardHandler.UpdateClassification).Methods("PUT", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/levels/{level}/questions/{questionId}", wizardHandler.UpdateQuestion).Methods("PUT", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/next", wizardHandler.Next).Methods("POST", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/previous", wizardHandler.Previous).Methods("POST", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/submit", wizardHandler.Submit).Methods("POST", "OPTIONS")
	anyone.HandleFunc("/wizard/sessions/{id}/results", wizardHandler.Results).Methods("GET", "OPTIONS")
	anyone.HandleFunc("/responses", responseHandler.Create).Methods("POST", "OPTIONS")

	// Respondent routes (require a token)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/responses", responseHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/responses/{id}", responseHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/responses/{id}/report", reportHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
