package httpapi

import (
	"net/http"
	"strconv"

	"studentportal-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

type MetricsHistoryResponse struct {
	Success bool                    `json:"success"`
	Items   []services.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{
		Success: true,
		Items:   s.MetricsHub.History(limit),
	})
}

// MetricsSocket streams live samples to a signed-in user. The session
// is resolved by hand because websocket clients cannot follow the JSON
// 401 the middleware writes.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	user, err := s.Users.FindByID(cookie.Value)
	if err != nil || user == nil {
		WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
