package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	adapthttp "diabetesai/internal/adapter/http"
	"diabetesai/internal/app"
	"diabetesai/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock collaborators (function-fields pattern)
// ---------------------------------------------------------------------------

type mockLoader struct {
	calls  int
	loadFn func(ctx context.Context) (domain.Classifier, domain.Scaler, error)
}

func (m *mockLoader) Load(ctx context.Context) (domain.Classifier, domain.Scaler, error) {
	m.calls++
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return &mockClassifier{}, identityScaler{}, nil
}

type identityScaler struct{}

func (identityScaler) Transform(x []float64) ([]float64, error) {
	return append([]float64(nil), x...), nil
}

type mockClassifier struct {
	calls    int
	seen     []float64
	decideFn func(x []float64) (domain.Label, error)
}

func (m *mockClassifier) Decide(x []float64) (domain.Label, error) {
	m.calls++
	m.seen = x
	if m.decideFn != nil {
		return m.decideFn(x)
	}
	return domain.LabelLowRisk, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func loaderFor(c *mockClassifier) *mockLoader {
	return &mockLoader{loadFn: func(context.Context) (domain.Classifier, domain.Scaler, error) {
		return c, identityScaler{}, nil
	}}
}

func missingLoader() *mockLoader {
	return &mockLoader{loadFn: func(context.Context) (domain.Classifier, domain.Scaler, error) {
		return nil, nil, fmt.Errorf("%w: scaler.json", domain.ErrArtifactsMissing)
	}}
}

func newTestServer(t *testing.T, loader domain.ModelLoader) *httptest.Server {
	t.Helper()
	ps := app.NewPredictionService(loader, 0)
	cs := app.NewChartsService(domain.PerformanceMetrics)
	srv := httptest.NewServer(adapthttp.New(ps, cs).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func postJSON(t *testing.T, target, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(target, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// HTML pages
// ---------------------------------------------------------------------------

func TestPredictionPage_GETShowsDefaults(t *testing.T) {
	srv := newTestServer(t, loaderFor(&mockClassifier{}))

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	for _, want := range []string{
		`name="glucose" value="120"`,
		`name="bmi" value="25"`,
		`name="diabetesPedigreeFunction" value="0.5"`,
		`name="heightCm" value="170"`,
		"Generate Prediction",
		"24.2",
		"Normal",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "prediction-negative") || strings.Contains(body, "prediction-positive") {
		t.Error("verdict rendered without a prediction")
	}
}

func TestPredictionPage_PredictLowRisk(t *testing.T) {
	c := &mockClassifier{}
	srv := newTestServer(t, loaderFor(c))

	form := url.Values{"action": {"predict"}}
	for i, f := range domain.PatientFields {
		form.Set(f.Name, fmt.Sprint(domain.DefaultPatientInput().Value(i)))
	}
	resp, err := http.PostForm(srv.URL+"/", form)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "Low Diabetes Risk") || !strings.Contains(body, "prediction-negative") {
		t.Errorf("expected low risk verdict, got:\n%s", body)
	}
	if c.calls != 1 {
		t.Errorf("expected 1 classifier call, got %d", c.calls)
	}
	want := domain.DefaultPatientInput().Vector()
	for i := range want {
		if c.seen[i] != want[i] {
			t.Errorf("feature %d: expected %v, got %v", i, want[i], c.seen[i])
		}
	}
}

func TestPredictionPage_PredictHighRisk(t *testing.T) {
	c := &mockClassifier{decideFn: func([]float64) (domain.Label, error) { return domain.LabelHighRisk, nil }}
	srv := newTestServer(t, loaderFor(c))

	resp, err := http.PostForm(srv.URL+"/", url.Values{"action": {"predict"}})
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body := readBody(t, resp)
	if !strings.Contains(body, "High Diabetes Risk Detected") || !strings.Contains(body, "prediction-positive") {
		t.Errorf("expected high risk verdict, got:\n%s", body)
	}
}

func TestPredictionPage_ClampsSubmittedValues(t *testing.T) {
	c := &mockClassifier{}
	srv := newTestServer(t, loaderFor(c))

	form := url.Values{
		"action":        {"predict"},
		"glucose":       {"1e19"},
		"age":           {"0"},
		"insulin":       {"not-a-number"},
		"heightCm":      {"400"},
		"bloodPressure": {"1e19"},
		"skinThickness": {"-1e19"},
	}
	resp, err := http.PostForm(srv.URL+"/", form)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body := readBody(t, resp)
	for _, want := range []string{
		`name="glucose" value="300"`,
		`name="age" value="1"`,
		`name="insulin" value="80"`,
		`name="heightCm" value="250"`,
		`name="bloodPressure" value="200"`,
		`name="skinThickness" value="0"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if c.seen[1] != 300 || c.seen[7] != 1 || c.seen[4] != 80 || c.seen[2] != 200 || c.seen[3] != 0 {
		t.Errorf("classifier saw unclamped vector %v", c.seen)
	}
}

func TestPredictionPage_BMIActionDoesNotPredict(t *testing.T) {
	c := &mockClassifier{}
	srv := newTestServer(t, loaderFor(c))

	form := url.Values{"action": {"bmi"}, "heightCm": {"170"}, "weightKg": {"100"}}
	resp, err := http.PostForm(srv.URL+"/", form)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body := readBody(t, resp)
	if !strings.Contains(body, "34.6") || !strings.Contains(body, "Obese") {
		t.Errorf("expected BMI 34.6 Obese, got:\n%s", body)
	}
	if c.calls != 0 {
		t.Errorf("expected no classifier calls, got %d", c.calls)
	}
}

func TestPredictionPage_ModelsMissing(t *testing.T) {
	loader := missingLoader()
	srv := newTestServer(t, loader)

	for _, do := range []func() (*http.Response, error){
		func() (*http.Response, error) { return http.Get(srv.URL + "/") },
		func() (*http.Response, error) {
			return http.PostForm(srv.URL+"/", url.Values{"action": {"predict"}})
		},
	} {
		resp, err := do()
		if err != nil {
			t.Fatal(err)
		}
		body := readBody(t, resp)
		resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(body, "Model files not found") {
			t.Errorf("expected missing-model error box, got:\n%s", body)
		}
		if strings.Contains(body, "Generate Prediction") {
			t.Error("predict button rendered without models")
		}
	}
	if loader.calls != 1 {
		t.Errorf("expected loader to run once, ran %d times", loader.calls)
	}
}

func TestPredictionPage_LoadFailure(t *testing.T) {
	loader := &mockLoader{loadFn: func(context.Context) (domain.Classifier, domain.Scaler, error) {
		return nil, nil, errors.New("corrupt scaler")
	}}
	srv := newTestServer(t, loader)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "corrupt scaler") {
		t.Errorf("expected error detail in page, got:\n%s", body)
	}
}

func TestStaticPages(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	tests := []struct {
		path string
		want []string
	}{
		{"/about", []string{"About DiabetesAI", "Pima Indian Diabetes Dataset", "Diabetes pedigree function", "Important Notice"}},
		{"/risk-factors", []string{"Diabetes Risk Factors", "High Blood Glucose", "Hypertension is closely linked to diabetes"}},
		{"/health-tips", []string{"Diabetes Prevention Tips", "Healthy Diet", "Annual diabetes screening", "Lose weight gradually (1-2 lbs/week)"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			body := readBody(t, resp)
			for _, want := range append(tt.want, "Choose Section", "Model Accuracy", "For Educational Use Only") {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	resp, err := http.Get(srv.URL + "/static/style.css")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, ".prediction-positive") {
		t.Error("stylesheet missing verdict classes")
	}
}

// ---------------------------------------------------------------------------
// API
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		loader *mockLoader
		loaded bool
	}{
		{"loaded", loaderFor(&mockClassifier{}), true},
		{"missing", missingLoader(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.loader)

			resp, err := http.Get(srv.URL + "/api/health")
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
				t.Errorf("expected Cache-Control no-store, got %q", cc)
			}
			var body map[string]any
			decodeBody(t, resp, &body)
			if body["ok"] != true || body["modelsLoaded"] != tt.loaded {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestPredictAPI(t *testing.T) {
	tests := []struct {
		name       string
		loader     func(*mockClassifier) *mockLoader
		decide     func([]float64) (domain.Label, error)
		body       string
		wantStatus int
		wantRisk   string
	}{
		{name: "defaults low risk", body: `{}`, wantStatus: http.StatusOK, wantRisk: "low"},
		{
			name:       "high risk",
			body:       `{"glucose":190,"bmi":41.5}`,
			decide:     func([]float64) (domain.Label, error) { return domain.LabelHighRisk, nil },
			wantStatus: http.StatusOK,
			wantRisk:   "high",
		},
		{name: "out of range", body: `{"glucose":301}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"cholesterol":5}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{`, wantStatus: http.StatusBadRequest},
		{
			name:       "models missing",
			loader:     func(*mockClassifier) *mockLoader { return missingLoader() },
			body:       `{}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid label",
			decide:     func([]float64) (domain.Label, error) { return domain.ParseLabel(7) },
			body:       `{}`,
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &mockClassifier{decideFn: tt.decide}
			loader := loaderFor(c)
			if tt.loader != nil {
				loader = tt.loader(c)
			}
			srv := newTestServer(t, loader)

			resp := postJSON(t, srv.URL+"/api/predict", tt.body)
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			var body map[string]any
			decodeBody(t, resp, &body)
			if tt.wantStatus != http.StatusOK {
				if _, ok := body["error"]; !ok {
					t.Errorf("expected error field, got %v", body)
				}
				return
			}
			if body["risk"] != tt.wantRisk {
				t.Errorf("expected risk %q, got %v", tt.wantRisk, body["risk"])
			}
			if _, ok := body["title"]; !ok {
				t.Error("missing title")
			}
		})
	}
}

func TestRiskProfileAPI(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	resp := postJSON(t, srv.URL+"/api/risk-profile", `{"glucose":250}`)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var scores []domain.FactorScore
	decodeBody(t, resp, &scores)
	if len(scores) != 6 {
		t.Fatalf("expected 6 factors, got %d", len(scores))
	}
	if scores[0].Name != "Glucose" || scores[0].Percent != 125 {
		t.Errorf("expected Glucose 125%%, got %+v", scores[0])
	}
}

func TestBMIAPI(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	t.Run("obese", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/bmi", `{"heightCm":170,"weightKg":100}`)
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var r domain.BMIReading
		decodeBody(t, resp, &r)
		if r.Rounded() != "34.6" || r.Category != domain.Obese {
			t.Errorf("expected 34.6 Obese, got %s %s", r.Rounded(), r.Category)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/bmi", `{"heightCm":90,"weightKg":70}`)
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestMetricsAPI(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	resp, err := http.Get(srv.URL + "/api/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var metrics []domain.Metric
	decodeBody(t, resp, &metrics)
	if len(metrics) != 4 || metrics[0].Name != "Accuracy" || metrics[0].Value != 94.2 {
		t.Errorf("unexpected metrics %v", metrics)
	}
}

func TestMetricsFollowChartsService(t *testing.T) {
	metrics := []domain.Metric{{Name: "Accuracy", Value: 88.8}, {Name: "Precision", Value: 77.7}}
	ps := app.NewPredictionService(missingLoader(), 0)
	srv := httptest.NewServer(adapthttp.New(ps, app.NewChartsService(metrics)).Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var got []domain.Metric
	decodeBody(t, resp, &got)
	if len(got) != 2 || got[0].Value != 88.8 || got[1].Name != "Precision" {
		t.Errorf("expected configured metrics, got %v", got)
	}

	page, err := http.Get(srv.URL + "/about")
	if err != nil {
		t.Fatal(err)
	}
	defer page.Body.Close() //nolint:errcheck

	body := readBody(t, page)
	if !strings.Contains(body, "88.8") || !strings.Contains(body, "77.7") {
		t.Error("about page does not show the configured metrics")
	}
}

func TestPredictAPI_AfterClose(t *testing.T) {
	ps := app.NewPredictionService(loaderFor(&mockClassifier{}), 0)
	srv := httptest.NewServer(adapthttp.New(ps, app.NewChartsService(domain.PerformanceMetrics)).Handler())
	t.Cleanup(srv.Close)

	if err := ps.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	resp := postJSON(t, srv.URL+"/api/predict", `{}`)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/health"},
		{http.MethodGet, "/api/predict"},
		{http.MethodDelete, "/"},
		{http.MethodPost, "/about"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close() //nolint:errcheck

			if resp.StatusCode != http.StatusMethodNotAllowed {
				t.Errorf("expected 405, got %d", resp.StatusCode)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, missingLoader())

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/metrics", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}

	resp2, err := http.Get(srv.URL + "/api/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close() //nolint:errcheck

	if got := resp2.Header.Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("expected generated uuid, got %q", got)
	}
}
