package adapthttp

import (
	"net/http"

	"diabetesai/internal/domain"
)

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	vm := s.newViewModel(pageAbout)
	vm.Features = domain.ModelFeatures
	vm.Performance = s.charts.PerformanceMetrics()
	s.render(w, http.StatusOK, vm)
}

func (s *Server) handleRiskFactors(w http.ResponseWriter, r *http.Request) {
	vm := s.newViewModel(pageRiskFactors)
	vm.RiskFactors = domain.RiskFactors
	s.render(w, http.StatusOK, vm)
}

func (s *Server) handleHealthTips(w http.ResponseWriter, r *http.Request) {
	vm := s.newViewModel(pageHealthTips)
	vm.Tips = domain.HealthTips
	s.render(w, http.StatusOK, vm)
}
