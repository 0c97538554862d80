package adapthttp

import (
	"log"
	"net/http"

	"diabetesai/internal/domain"
)

// healthResponse reports liveness and whether the artifacts are loaded.
type healthResponse struct {
	OK           bool `json:"ok"`
	ModelsLoaded bool `json:"modelsLoaded"`
}

// bmiRequest is the BMI calculator input.
type bmiRequest struct {
	HeightCM float64 `json:"heightCm"`
	WeightKG float64 `json:"weightKg"`
}

// handleHealth reports service health.
// @Summary Service health
// @Description Liveness plus whether the classifier and scaler are loaded
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true, ModelsLoaded: s.predictions.Available(r.Context())})
}

// handlePredictAPI classifies one patient record.
// @Summary Predict diabetes risk
// @Description Scales the eight inputs and runs the classifier. Omitted fields take the form defaults.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body domain.PatientInput true "Patient record"
// @Success 200 {object} domain.Verdict
// @Failure 400 {object} map[string]string "Invalid JSON or value out of range"
// @Failure 503 {object} map[string]string "Model files not found"
// @Failure 500 {object} map[string]string "Prediction failed"
// @Router /predict [post]
func (s *Server) handlePredictAPI(w http.ResponseWriter, r *http.Request) {
	in := domain.DefaultPatientInput()
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	label, err := s.predictions.Predict(r.Context(), in)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("predict: %v", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.VerdictFor(label))
}

// handleRiskProfileAPI returns the risk factor percentages for a record.
// @Summary Risk factor profile
// @Description Six factor scores, each value divided by its reference maximum. Values may exceed 100.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body domain.PatientInput true "Patient record"
// @Success 200 {array} domain.FactorScore
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Router /risk-profile [post]
func (s *Server) handleRiskProfileAPI(w http.ResponseWriter, r *http.Request) {
	in := domain.DefaultPatientInput()
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.RiskFactorProfile(in))
}

// handleBMIAPI runs the BMI calculator.
// @Summary Calculate BMI
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body bmiRequest true "Height in cm and weight in kg"
// @Success 200 {object} domain.BMIReading
// @Failure 400 {object} map[string]string "Invalid JSON or value out of range"
// @Router /bmi [post]
func (s *Server) handleBMIAPI(w http.ResponseWriter, r *http.Request) {
	req := bmiRequest{HeightCM: domain.DefaultHeightCM, WeightKG: domain.DefaultWeightKG}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := domain.ValidateBodyMeasures(req.HeightCM, req.WeightKG); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.CalculateBMI(req.HeightCM, req.WeightKG))
}

// handleMetricsAPI returns the published model performance figures.
// @Summary Model performance metrics
// @Tags System
// @Produce json
// @Success 200 {array} domain.Metric
// @Router /metrics [get]
func (s *Server) handleMetricsAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.charts.Metrics())
}
