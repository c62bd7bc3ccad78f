package ussd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/menu"
)

// Handler binds the gateway callback to the dialog engine.
type Handler struct {
	engine *menu.Engine
}

// New creates the USSD callback handler.
func New(engine *menu.Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes registers the callback endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/callback", h.handleCallback)
}

// handleCallback accepts the gateway's form post and answers with a
// plain-text CON/END frame. All four fields are optional; the engine
// normalizes absent values.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	req := ussd.Request{
		SessionID:   r.FormValue("sessionId"),
		ServiceCode: r.FormValue("serviceCode"),
		Phone:       r.FormValue("phoneNumber"),
		Text:        r.FormValue("text"),
	}

	resp := h.engine.Handle(r.Context(), req)

	frame := "con"
	if resp.Terminal {
		frame = "end"
	}
	framesTotal.WithLabelValues(frame).Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(resp.Render()))
}

// respondError sends a JSON error for malformed transport requests.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
