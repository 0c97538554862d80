package adapthttp

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"diabetesai/internal/app"
	"diabetesai/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page identifiers double as template file stems.
const (
	pagePrediction  = "prediction"
	pageAbout       = "about"
	pageRiskFactors = "risk_factors"
	pageHealthTips  = "health_tips"
)

type navItem struct {
	Page  string
	Path  string
	Label string
}

var navigation = []navItem{
	{Page: pagePrediction, Path: "/", Label: "Prediction"},
	{Page: pageAbout, Path: "/about", Label: "About"},
	{Page: pageRiskFactors, Path: "/risk-factors", Label: "Risk Factors"},
	{Page: pageHealthTips, Path: "/health-tips", Label: "Health Tips"},
}

var pages = parsePages(pagePrediction, pageAbout, pageRiskFactors, pageHealthTips)

func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, n := range names {
		out[n] = template.Must(template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+n+".html"))
	}
	return out
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type fieldView struct {
	domain.Field
	Value string
}

// viewModel is everything a page needs. It is rebuilt from scratch per request.
type viewModel struct {
	Page    string
	Nav     []navItem
	Sidebar []domain.Metric
	Error   string

	// Prediction page.
	ModelsAvailable bool
	Fields          []fieldView
	HeightCM        float64
	WeightKG        float64
	BMI             domain.BMIReading
	Radar           app.RadarChart
	Verdict         *domain.Verdict

	// Static pages.
	Performance app.BarChart
	Features    []string
	RiskFactors []domain.RiskFactor
	Tips        [2][]domain.TipGroup
}

func (s *Server) newViewModel(page string) viewModel {
	sidebar := s.charts.Metrics()
	if len(sidebar) > 3 {
		sidebar = sidebar[:3]
	}
	return viewModel{
		Page:    page,
		Nav:     navigation,
		Sidebar: sidebar,
	}
}

// predictionView renders the prediction page state for the given inputs and outcome.
func (s *Server) predictionView(in domain.PatientInput, heightCM, weightKG float64, verdict *domain.Verdict) viewModel {
	vm := s.newViewModel(pagePrediction)
	vm.ModelsAvailable = true
	vm.Fields = make([]fieldView, len(domain.PatientFields))
	for i, f := range domain.PatientFields {
		vm.Fields[i] = fieldView{Field: f, Value: formatValue(in.Value(i), f.Integer)}
	}
	vm.HeightCM, vm.WeightKG = heightCM, weightKG
	vm.BMI = domain.CalculateBMI(heightCM, weightKG)
	vm.Radar = s.charts.RiskProfile(in)
	vm.Verdict = verdict
	return vm
}

func formatValue(v float64, integer bool) string {
	if integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Server) render(w http.ResponseWriter, status int, vm viewModel) {
	tpl, ok := pages[vm.Page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.ExecuteTemplate(w, "layout.html", vm); err != nil {
		log.Printf("render %s: %v", vm.Page, err)
	}
}
