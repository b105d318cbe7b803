package httpapi

import (
	"chat-presence/domain"
	"chat-presence/services"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const defaultConversationLimit = 50

type MessageHandler struct {
	log     *slog.Logger
	service services.IMessageService
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
	FileURL    string `json:"fileUrl"`
}

func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/messages", func(r chi.Router) {
		r.Post("/", h.send)
		r.Get("/{userId}", h.conversation)
	})
}

func (h *MessageHandler) send(w http.ResponseWriter, r *http.Request) {
	var body sendMessageRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, h.log, err)
		return
	}
	receiverID, err := domain.ParseUserID(body.ReceiverID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	message, err := h.service.SendMessage(r.Context(), domain.SendMessageCommand{
		SenderID:   currentUser(r),
		SenderName: body.SenderName,
		ReceiverID: receiverID,
		Content:    body.Message,
		FileURL:    body.FileURL,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *MessageHandler) conversation(w http.ResponseWriter, r *http.Request) {
	peerID, err := pathUser(r, "userId")
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	limit := defaultConversationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.service.Conversation(r.Context(), currentUser(r), peerID, limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
