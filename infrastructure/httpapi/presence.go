package httpapi

import (
	"chat-presence/contract"
	"chat-presence/domain"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

type PresenceHandler struct {
	registry contract.IRegistry
}

type presenceResponse struct {
	OnlineUsers []domain.UserID `json:"onlineUsers"`
	Count       int             `json:"count"`
}

func (h *PresenceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/presence", h.snapshot)
}

func (h *PresenceHandler) snapshot(w http.ResponseWriter, _ *http.Request) {
	users := h.registry.ListOnlineUsers()
	slices.Sort(users)
	writeJSON(w, http.StatusOK, presenceResponse{OnlineUsers: users, Count: len(users)})
}
