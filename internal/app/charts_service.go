package app

import (
	"math"

	"diabetesai/internal/domain"
)

// ChartsService builds the data behind the decorative charts.
type ChartsService struct {
	metrics []domain.Metric
}

// NewChartsService creates a ChartsService reporting the given performance metrics.
func NewChartsService(metrics []domain.Metric) *ChartsService {
	return &ChartsService{metrics: metrics}
}

// RadarChart is the risk factor profile as polar chart series.
type RadarChart struct {
	Factors  []string  `json:"factors"`
	Values   []float64 `json:"values"`
	RangeMax float64   `json:"rangeMax"`
}

// BarChart is a labelled single-series bar chart.
type BarChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// RiskProfile returns the radar chart for in. The radial axis grows past 100
// so that out-of-reference values are drawn unclipped.
func (s *ChartsService) RiskProfile(in domain.PatientInput) RadarChart {
	scores := domain.RiskFactorProfile(in)
	chart := RadarChart{
		Factors:  make([]string, 0, len(scores)),
		Values:   make([]float64, 0, len(scores)),
		RangeMax: 100,
	}
	for _, sc := range scores {
		chart.Factors = append(chart.Factors, sc.Name)
		chart.Values = append(chart.Values, sc.Percent)
		chart.RangeMax = math.Max(chart.RangeMax, sc.Percent)
	}
	return chart
}

// Metrics returns a copy of the model evaluation figures.
func (s *ChartsService) Metrics() []domain.Metric {
	return append([]domain.Metric(nil), s.metrics...)
}

// PerformanceMetrics returns the model evaluation figures as a bar chart.
func (s *ChartsService) PerformanceMetrics() BarChart {
	chart := BarChart{
		Labels: make([]string, 0, len(s.metrics)),
		Values: make([]float64, 0, len(s.metrics)),
	}
	for _, m := range s.metrics {
		chart.Labels = append(chart.Labels, m.Name)
		chart.Values = append(chart.Values, m.Value)
	}
	return chart
}
