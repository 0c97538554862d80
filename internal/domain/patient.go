// Package domain contains the core entities, pure calculations and ports.
package domain

import (
	"errors"
	"fmt"
	"math"
)

// FeatureCount is the width of the vector the scaler and classifier were fit on.
const FeatureCount = 8

// FeatureNames lists the training columns in vector order. Changing this order
// requires re-exporting both artifacts.
var FeatureNames = [FeatureCount]string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

// ErrOutOfRange is returned when an input falls outside its field bounds.
var ErrOutOfRange = errors.New("value out of range")

// PatientInput holds the eight attributes submitted for one assessment.
type PatientInput struct {
	Pregnancies              int     `json:"pregnancies"`
	Glucose                  int     `json:"glucose"`
	BloodPressure            int     `json:"bloodPressure"`
	SkinThickness            int     `json:"skinThickness"`
	Insulin                  int     `json:"insulin"`
	BMI                      float64 `json:"bmi"`
	DiabetesPedigreeFunction float64 `json:"diabetesPedigreeFunction"`
	Age                      int     `json:"age"`
}

// Field describes one bounded numeric input of the patient form.
type Field struct {
	Name    string
	Label   string
	Help    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Integer bool
}

// PatientFields describes the form inputs in vector order.
var PatientFields = [FeatureCount]Field{
	{Name: "pregnancies", Label: "🤰 Number of Pregnancies", Help: "Number of times pregnant", Min: 0, Max: 20, Step: 1, Default: 1, Integer: true},
	{Name: "glucose", Label: "🍯 Glucose Level (mg/dL)", Help: "Plasma glucose concentration", Min: 0, Max: 300, Step: 1, Default: 120, Integer: true},
	{Name: "bloodPressure", Label: "💓 Blood Pressure (mmHg)", Help: "Diastolic blood pressure", Min: 0, Max: 200, Step: 1, Default: 70, Integer: true},
	{Name: "skinThickness", Label: "📏 Skin Thickness (mm)", Help: "Triceps skin fold thickness", Min: 0, Max: 100, Step: 1, Default: 20, Integer: true},
	{Name: "insulin", Label: "💉 Insulin Level (μU/mL)", Help: "2-Hour serum insulin", Min: 0, Max: 1000, Step: 1, Default: 80, Integer: true},
	{Name: "bmi", Label: "⚖️ BMI (kg/m²)", Help: "Body mass index", Min: 0, Max: 70, Step: 0.01, Default: 25.0},
	{Name: "diabetesPedigreeFunction", Label: "🧬 Diabetes Pedigree Function", Help: "Diabetes pedigree function (genetic factor)", Min: 0, Max: 2.5, Step: 0.1, Default: 0.5},
	{Name: "age", Label: "🎂 Age (years)", Help: "Age in years", Min: 1, Max: 120, Step: 1, Default: 30, Integer: true},
}

// DefaultPatientInput returns the form defaults.
func DefaultPatientInput() PatientInput {
	var in PatientInput
	for i, f := range PatientFields {
		in.set(i, f.Default)
	}
	return in
}

// Vector returns the inputs as a float64 vector in training column order.
func (in PatientInput) Vector() []float64 {
	return []float64{
		float64(in.Pregnancies),
		float64(in.Glucose),
		float64(in.BloodPressure),
		float64(in.SkinThickness),
		float64(in.Insulin),
		in.BMI,
		in.DiabetesPedigreeFunction,
		float64(in.Age),
	}
}

// Value returns the i-th field in vector order.
func (in PatientInput) Value(i int) float64 {
	return in.Vector()[i]
}

// Clamp pins every field to its bounds, the way the form widgets do.
func (in PatientInput) Clamp() PatientInput {
	out := in
	v := in.Vector()
	for i, f := range PatientFields {
		out.set(i, clamp(v[i], f.Min, f.Max))
	}
	return out
}

// Validate reports the first field outside its bounds.
func (in PatientInput) Validate() error {
	v := in.Vector()
	for i, f := range PatientFields {
		if v[i] < f.Min || v[i] > f.Max || math.IsNaN(v[i]) {
			return fmt.Errorf("%s must be within [%g, %g]: %w", f.Name, f.Min, f.Max, ErrOutOfRange)
		}
	}
	return nil
}

// With returns a copy with the named field set to v. Unknown names are ignored.
func (in PatientInput) With(name string, v float64) PatientInput {
	for i, f := range PatientFields {
		if f.Name == name {
			in.set(i, v)
			break
		}
	}
	return in
}

func (in *PatientInput) set(i int, v float64) {
	switch i {
	case 0:
		in.Pregnancies = toInt(v)
	case 1:
		in.Glucose = toInt(v)
	case 2:
		in.BloodPressure = toInt(v)
	case 3:
		in.SkinThickness = toInt(v)
	case 4:
		in.Insulin = toInt(v)
	case 5:
		in.BMI = v
	case 6:
		in.DiabetesPedigreeFunction = v
	case 7:
		in.Age = toInt(v)
	}
}

// toInt truncates v, saturating at the int32 range so huge inputs keep their sign.
func toInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(clamp(v, math.MinInt32, math.MaxInt32))
}
