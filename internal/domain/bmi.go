package domain

import "fmt"

// BMI calculator bounds and defaults, in cm and kg.
const (
	MinHeightCM     = 100
	MaxHeightCM     = 250
	DefaultHeightCM = 170
	MinWeightKG     = 30
	MaxWeightKG     = 200
	DefaultWeightKG = 70
)

// BMICategory is a coarse body-mass bucket.
type BMICategory string

// BMI categories.
const (
	Underweight BMICategory = "Underweight"
	Normal      BMICategory = "Normal"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)

// BMIReading is the result of the standalone BMI calculator.
type BMIReading struct {
	HeightCM float64     `json:"heightCm"`
	WeightKG float64     `json:"weightKg"`
	BMI      float64     `json:"bmi"`
	Category BMICategory `json:"category"`
}

// Rounded returns the BMI formatted to one decimal place.
func (r BMIReading) Rounded() string {
	return fmt.Sprintf("%.1f", r.BMI)
}

// CalculateBMI computes weight / height² with height in centimetres.
// It is unrelated to PatientInput.BMI.
func CalculateBMI(heightCM, weightKG float64) BMIReading {
	m := heightCM / 100
	bmi := weightKG / (m * m)
	return BMIReading{HeightCM: heightCM, WeightKG: weightKG, BMI: bmi, Category: CategorizeBMI(bmi)}
}

// CategorizeBMI buckets a BMI value. Each upper edge is exclusive.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// ValidateBodyMeasures checks the calculator bounds.
func ValidateBodyMeasures(heightCM, weightKG float64) error {
	if heightCM < MinHeightCM || heightCM > MaxHeightCM {
		return fmt.Errorf("heightCm must be within [%d, %d]: %w", MinHeightCM, MaxHeightCM, ErrOutOfRange)
	}
	if weightKG < MinWeightKG || weightKG > MaxWeightKG {
		return fmt.Errorf("weightKg must be within [%d, %d]: %w", MinWeightKG, MaxWeightKG, ErrOutOfRange)
	}
	return nil
}

// ClampBodyMeasures pins height and weight to the calculator bounds.
func ClampBodyMeasures(heightCM, weightKG float64) (float64, float64) {
	return clamp(heightCM, MinHeightCM, MaxHeightCM), clamp(weightKG, MinWeightKG, MaxWeightKG)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
