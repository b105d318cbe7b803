package httpapi

import (
	"chat-presence/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type FriendHandler struct {
	log     *slog.Logger
	service services.IFriendService
}

func (h *FriendHandler) RegisterRoutes(r chi.Router) {
	r.Route("/friends", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/{userId}", h.request)
		r.Post("/{userId}/accept", h.answer(true))
		r.Post("/{userId}/reject", h.answer(false))
		r.Delete("/{userId}", h.remove)
	})
}

func (h *FriendHandler) list(w http.ResponseWriter, r *http.Request) {
	friends, err := h.service.ListFriends(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}

func (h *FriendHandler) request(w http.ResponseWriter, r *http.Request) {
	to, err := pathUser(r, "userId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.service.SendRequest(r.Context(), currentUser(r), to); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *FriendHandler) answer(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := pathUser(r, "userId")
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		if err := h.service.HandleRequest(r.Context(), currentUser(r), from, accept); err != nil {
			writeError(w, h.log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *FriendHandler) remove(w http.ResponseWriter, r *http.Request) {
	friendID, err := pathUser(r, "userId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.service.RemoveFriend(r.Context(), currentUser(r), friendID); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
