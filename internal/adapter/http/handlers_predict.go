package adapthttp

import (
	"errors"
	"log"
	"net/http"

	"diabetesai/internal/domain"
)

const (
	actionPredict = "predict"
	actionBMI     = "bmi"
)

// handlePrediction serves the assessment form. GET shows the defaults; POST
// re-renders with the submitted values and, for action=predict, the verdict.
func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.predictions.Load(ctx); err != nil {
		vm := s.newViewModel(pagePrediction)
		if errors.Is(err, domain.ErrArtifactsMissing) {
			vm.Error = "⚠️ Model files not found. Please ensure the model and scaler artifacts are available (" + err.Error() + ")."
			s.render(w, http.StatusOK, vm)
			return
		}
		log.Printf("load models: %v", err)
		vm.Error = "Failed to load the prediction model: " + err.Error()
		s.render(w, statusFor(err), vm)
		return
	}

	in := domain.DefaultPatientInput()
	heightCM, weightKG := float64(domain.DefaultHeightCM), float64(domain.DefaultWeightKG)
	action := ""

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		in = patientForm(r)
		heightCM, weightKG = domain.ClampBodyMeasures(
			floatForm(r, "heightCm", heightCM),
			floatForm(r, "weightKg", weightKG),
		)
		action = r.PostFormValue("action")
	}

	var verdict *domain.Verdict
	if action == actionPredict {
		label, err := s.predictions.Predict(ctx, in)
		if err != nil {
			log.Printf("predict: %v", err)
			vm := s.predictionView(in, heightCM, weightKG, nil)
			vm.Error = "Prediction failed: " + err.Error()
			s.render(w, statusFor(err), vm)
			return
		}
		v := domain.VerdictFor(label)
		verdict = &v
	}

	s.render(w, http.StatusOK, s.predictionView(in, heightCM, weightKG, verdict))
}
