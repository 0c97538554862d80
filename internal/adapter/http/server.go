package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"diabetesai/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	predictions *app.PredictionService
	charts      *app.ChartsService
}

// New creates a Server wired to the given application services.
func New(ps *app.PredictionService, cs *app.ChartsService) *Server {
	return &Server{predictions: ps, charts: cs}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handlePrediction).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/about", s.handleAbout).Methods(http.MethodGet)
	r.HandleFunc("/risk-factors", s.handleRiskFactors).Methods(http.MethodGet)
	r.HandleFunc("/health-tips", s.handleHealthTips).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(staticHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/predict", s.handlePredictAPI).Methods(http.MethodPost)
	api.HandleFunc("/risk-profile", s.handleRiskProfileAPI).Methods(http.MethodPost)
	api.HandleFunc("/bmi", s.handleBMIAPI).Methods(http.MethodPost)
	api.HandleFunc("/metrics", s.handleMetricsAPI).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return withRequestID(s.loggingMiddleware(withNoCache(r)))
}
