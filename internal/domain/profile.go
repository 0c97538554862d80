package domain

// FactorScore is one axis of the risk factor radar chart.
type FactorScore struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// riskFactorMax holds the reference maximum each factor is normalized against.
var riskFactorMax = []struct {
	name  string
	max   float64
	value func(PatientInput) float64
}{
	{"Glucose", 200, func(in PatientInput) float64 { return float64(in.Glucose) }},
	{"BMI", 40, func(in PatientInput) float64 { return in.BMI }},
	{"Age", 80, func(in PatientInput) float64 { return float64(in.Age) }},
	{"Pregnancies", 10, func(in PatientInput) float64 { return float64(in.Pregnancies) }},
	{"Blood Pressure", 150, func(in PatientInput) float64 { return float64(in.BloodPressure) }},
	{"Insulin", 300, func(in PatientInput) float64 { return float64(in.Insulin) }},
}

// RiskFactorProfile expresses six raw inputs as a percentage of their reference
// maximum. Values are not clamped and may exceed 100.
func RiskFactorProfile(in PatientInput) []FactorScore {
	out := make([]FactorScore, 0, len(riskFactorMax))
	for _, f := range riskFactorMax {
		out = append(out, FactorScore{Name: f.name, Percent: f.value(in) / f.max * 100})
	}
	return out
}
