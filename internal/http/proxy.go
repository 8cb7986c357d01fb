package httpapi

import (
	"fmt"
	"io"
	"log"
	"net/http"
)

// Proxy passes the request body through to the external chat API and
// relays the upstream JSON back. No transformation happens here; the
// endpoint only hides the upstream URL from the browser.
func (s *Server) Proxy(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	status, data, err := s.Chat.Forward(r.Context(), body)
	if err != nil {
		s.writeServiceError(w, err, "chat proxy")
		return
	}
	if status < 200 || status >= 300 {
		log.Printf("chat proxy: upstream returned %d", status)
		WriteJSON(w, status, map[string]string{
			"error": fmt.Sprintf("API returned status %d", status),
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
