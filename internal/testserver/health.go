package testserver

import "net/http"

// HealthPath путь health check endpoint'а
const HealthPath = "/health"

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Users   int    `json:"users"`
	Records int    `json:"records"`
}

// handleHealth обрабатывает GET /health.
// Dev server использует его как readiness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	users, records := s.store.stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Users:   users,
		Records: records,
	})
}
