package model

import (
	"fmt"

	"diabetesai/internal/domain"
)

// LinearClassifier predicts the positive class when coef·x + intercept exceeds
// threshold. Exported logistic regression and linear SVM models use threshold 0.
type LinearClassifier struct {
	Coef      []float64
	Intercept float64
	Threshold float64
}

// Decide returns the label for a single scaled row.
func (c *LinearClassifier) Decide(x []float64) (domain.Label, error) {
	if len(x) != len(c.Coef) {
		return 0, fmt.Errorf("linear classifier: expected %d features, got %d", len(c.Coef), len(x))
	}
	if c.DecisionFunction(x) > c.Threshold {
		return domain.LabelHighRisk, nil
	}
	return domain.LabelLowRisk, nil
}

// DecisionFunction returns the signed distance of x from the separating hyperplane.
func (c *LinearClassifier) DecisionFunction(x []float64) float64 {
	z := c.Intercept
	for i, w := range c.Coef {
		z += w * x[i]
	}
	return z
}
