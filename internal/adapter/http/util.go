package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"diabetesai/internal/app"
	"diabetesai/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrArtifactsMissing), errors.Is(err, app.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// floatForm reads a numeric form value. Missing, unparsable and non-finite
// values fall back.
func floatForm(r *http.Request, key string, fallback float64) float64 {
	v := r.PostFormValue(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// patientForm reads the eight patient fields from a submitted form and pins
// each one to its bounds before it is stored.
func patientForm(r *http.Request) domain.PatientInput {
	in := domain.DefaultPatientInput()
	for i, f := range domain.PatientFields {
		v := floatForm(r, f.Name, in.Value(i))
		in = in.With(f.Name, math.Min(math.Max(v, f.Min), f.Max))
	}
	return in
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
