package domain

// Verdict is the display block for a prediction outcome.
type Verdict struct {
	Label   Label  `json:"label"`
	Risk    string `json:"risk"`
	Class   string `json:"-"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// VerdictFor maps a label to its result block.
func VerdictFor(l Label) Verdict {
	if l == LabelHighRisk {
		return Verdict{
			Label:   l,
			Risk:    "high",
			Class:   "prediction-positive",
			Title:   "🚨 High Diabetes Risk Detected",
			Message: "The AI model indicates a high probability of diabetes. Please consult a healthcare professional immediately for proper diagnosis and treatment.",
		}
	}
	return Verdict{
		Label:   l,
		Risk:    "low",
		Class:   "prediction-negative",
		Title:   "✅ Low Diabetes Risk",
		Message: "The AI model suggests low diabetes risk based on current parameters. Continue maintaining healthy lifestyle habits!",
	}
}
