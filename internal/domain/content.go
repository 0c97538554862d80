package domain

// Metric is a named model performance figure, in percent.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PerformanceMetrics are the published evaluation figures of the bundled model.
var PerformanceMetrics = []Metric{
	{Name: "Accuracy", Value: 94.2},
	{Name: "Precision", Value: 91.8},
	{Name: "Recall", Value: 89.5},
	{Name: "F1-Score", Value: 90.6},
}

// RiskFactor is an entry on the Risk Factors page.
type RiskFactor struct {
	Icon        string
	Factor      string
	Description string
}

// RiskFactors lists the common diabetes risk factors.
var RiskFactors = []RiskFactor{
	{Icon: "🍯", Factor: "High Blood Glucose", Description: "Consistently elevated blood sugar levels"},
	{Icon: "⚖️", Factor: "Obesity", Description: "BMI > 30 increases diabetes risk significantly"},
	{Icon: "👨‍👩‍👧‍👦", Factor: "Family History", Description: "Genetic predisposition plays a crucial role"},
	{Icon: "🛋️", Factor: "Physical Inactivity", Description: "Sedentary lifestyle increases risk"},
	{Icon: "🎂", Factor: "Age", Description: "Risk increases with age, especially after 45"},
	{Icon: "💓", Factor: "High Blood Pressure", Description: "Hypertension is closely linked to diabetes"},
}

// TipGroup is one card on the Health Tips page.
type TipGroup struct {
	Icon  string
	Title string
	Tips  []string
}

// HealthTips are the prevention tips, split into the page's two columns.
var HealthTips = [2][]TipGroup{
	{
		{Icon: "🥗", Title: "Healthy Diet", Tips: []string{
			"Choose whole grains over refined carbs",
			"Include plenty of vegetables and fruits",
			"Limit sugary drinks and snacks",
			"Control portion sizes",
		}},
		{Icon: "🏃‍♂️", Title: "Regular Exercise", Tips: []string{
			"150 minutes of moderate exercise weekly",
			"Include both cardio and strength training",
			"Take regular walks after meals",
			"Find activities you enjoy",
		}},
	},
	{
		{Icon: "⚖️", Title: "Weight Management", Tips: []string{
			"Maintain a healthy BMI (18.5-24.9)",
			"Lose weight gradually (1-2 lbs/week)",
			"Focus on sustainable lifestyle changes",
			"Track your progress regularly",
		}},
		{Icon: "🩺", Title: "Regular Monitoring", Tips: []string{
			"Check blood sugar levels regularly",
			"Annual diabetes screening",
			"Monitor blood pressure",
			"Regular health checkups",
		}},
	},
}

// ModelFeatures lists the inputs described on the About page.
var ModelFeatures = []string{
	"Pregnancies history",
	"Glucose concentration",
	"Blood pressure",
	"Skin thickness",
	"Insulin levels",
	"Body Mass Index (BMI)",
	"Diabetes pedigree function",
	"Age",
}
