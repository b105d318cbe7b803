package httpapi

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/services"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	log     *slog.Logger
	service services.INotificationService
}

type createNotificationRequest struct {
	Recipients  []string `json:"recipients"`
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	ReferenceID string   `json:"referenceId"`
	RefModel    string   `json:"refModel"`
}

type countResponse struct {
	Count int `json:"count"`
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Delete("/", h.deleteAll)
		r.Patch("/read-all", h.markAllRead)
		r.Patch("/{id}/read", h.markRead)
		r.Delete("/{id}", h.deleteOne)
		r.Delete("/reference/{model}/{refId}", h.deleteByReference)
	})
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.List(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// create records a notification issued by the caller on behalf of a domain action
// (a like, a forum post, ...) and pushes it to the recipients.
func (h *NotificationHandler) create(w http.ResponseWriter, r *http.Request) {
	var body createNotificationRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, h.log, err)
		return
	}

	recipients := make([]domain.UserID, 0, len(body.Recipients))
	for _, raw := range body.Recipients {
		userID, err := domain.ParseUserID(raw)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		recipients = append(recipients, userID)
	}

	var ref *domain.Reference
	if body.ReferenceID != "" || body.RefModel != "" {
		parsed, err := domain.ParseReference(body.RefModel, body.ReferenceID)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		ref = &parsed
	}

	created, err := h.service.Notify(r.Context(), domain.NotifyCommand{
		ActorID:    currentUser(r),
		Recipients: recipients,
		Kind:       domain.NotificationKind(body.Type),
		Text:       body.Message,
		Reference:  ref,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := notificationID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	notification, err := h.service.MarkRead(r.Context(), currentUser(r), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, notification)
}

func (h *NotificationHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.MarkAllRead(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: count})
}

func (h *NotificationHandler) deleteOne(w http.ResponseWriter, r *http.Request) {
	id, err := notificationID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.service.Delete(r.Context(), currentUser(r), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) deleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: count})
}

// deleteByReference cascades the removal of an entity (a forum, a post) to
// the caller's notifications pointing at it.
func (h *NotificationHandler) deleteByReference(w http.ResponseWriter, r *http.Request) {
	ref, err := domain.ParseReference(chi.URLParam(r, "model"), chi.URLParam(r, "refId"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	count, err := h.service.DeleteByReference(r.Context(), currentUser(r), ref)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: count})
}

func notificationID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed notification id", errors.ErrInvalidCommand)
	}
	return id, nil
}
