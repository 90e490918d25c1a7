package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/blazeos/blaze-bridge/internal/phone"
	"github.com/blazeos/blaze-bridge/internal/request"
	"github.com/blazeos/blaze-bridge/internal/response"
	"github.com/blazeos/blaze-bridge/internal/scheduler"
	"github.com/blazeos/blaze-bridge/internal/service"
	"github.com/google/uuid"
)

// WhatsAppHandler wires the dashboard-facing endpoints to the bridge
// service and the dispatcher scheduler.
type WhatsAppHandler struct {
	bridge     service.BridgeService
	dispatcher scheduler.Scheduler
}

// NewWhatsAppHandler constructs a WhatsAppHandler. The dispatcher may
// be nil when outbox delivery is left to an external poller.
func NewWhatsAppHandler(bridge service.BridgeService, dispatcher scheduler.Scheduler) *WhatsAppHandler {
	return &WhatsAppHandler{bridge: bridge, dispatcher: dispatcher}
}

// respondServiceError maps bridge errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, conversation.ErrNotFound),
		errors.Is(err, message.ErrNotFound),
		errors.Is(err, outbox.ErrNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, message.ErrEmptyBody),
		errors.Is(err, message.ErrEmptyPhone),
		errors.Is(err, conversation.ErrEmptyPhone),
		errors.Is(err, phone.ErrUnresolvable):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns all conversations, newest activity first.
// @Tags        conversations
// @Produce     json
// @Success     200 {object} response.ConversationsResponse
// @Failure     500 {object} map[string]string
// @Router      /api/whatsapp/conversations [get]
func (h *WhatsAppHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.bridge.ListConversations(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromConversations(convs))
}

// GetConversation godoc
// @Summary     Get one conversation
// @Tags        conversations
// @Produce     json
// @Param       id path string true "Conversation id"
// @Success     200 {object} response.ConversationsResponse
// @Failure     404 {object} map[string]string
// @Router      /api/whatsapp/conversations/{id} [get]
func (h *WhatsAppHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.bridge.GetConversation(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromConversation(c))
}

// UpdateConversation godoc
// @Summary     Update a conversation
// @Description Partial update; absent fields are left untouched.
// @Tags        conversations
// @Accept      json
// @Produce     json
// @Param       id      path string                     true "Conversation id"
// @Param       request body request.UpdateConversation true "Fields to update"
// @Success     200 {object} response.ConversationsResponse
// @Failure     400 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /api/whatsapp/conversations/{id} [put]
func (h *WhatsAppHandler) UpdateConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateConversation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := conversation.Patch{Name: req.Name, Labels: req.Labels, Notes: req.Notes}
	if req.Status != nil {
		st := conversation.Status(*req.Status)
		if st != conversation.StatusActive && st != conversation.StatusArchived {
			response.RespondError(w, http.StatusBadRequest, "status must be 'active' or 'archived'")
			return
		}
		patch.Status = &st
	}

	c, err := h.bridge.UpdateConversation(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromConversation(c))
}

// MarkRead godoc
// @Summary     Mark a conversation read
// @Description Resets the unread counter.
// @Tags        conversations
// @Produce     json
// @Param       id path string true "Conversation id"
// @Success     200 {object} response.ConversationsResponse
// @Failure     404 {object} map[string]string
// @Router      /api/whatsapp/conversations/{id}/read [post]
func (h *WhatsAppHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.bridge.MarkRead(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromConversation(c))
}

// ListMessages godoc
// @Summary     List a conversation's messages
// @Description Chronological message history for one conversation.
// @Tags        messages
// @Produce     json
// @Param       id path string true "Conversation id"
// @Success     200 {object} response.MessagesResponse
// @Failure     400 {object} map[string]string
// @Router      /api/whatsapp/conversations/{id}/messages [get]
func (h *WhatsAppHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	msgs, err := h.bridge.ListMessages(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromMessages(msgs))
}

// Send godoc
// @Summary     Send a message
// @Description Queues one outbound message; the gateway picks it up from the outbox.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendMessage true "Target and content"
// @Success     200 {object} response.MessagesResponse
// @Failure     400 {object} map[string]string
// @Router      /api/whatsapp/send [post]
func (h *WhatsAppHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cmd := service.SendMessage{Phone: req.Phone, Body: req.Body, Type: req.Type}
	if req.ConversationID != "" {
		id, err := uuid.Parse(req.ConversationID)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid conversationId")
			return
		}
		cmd.ConversationID = id
	}

	msg, err := h.bridge.Send(r.Context(), cmd)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromMessage(msg))
}

// ListOutbox godoc
// @Summary     List pending outbox items
// @Description The gateway polls this endpoint for messages awaiting delivery.
// @Tags        outbox
// @Produce     json
// @Success     200 {object} response.OutboxResponse
// @Failure     500 {object} map[string]string
// @Router      /api/whatsapp/outbox [get]
func (h *WhatsAppHandler) ListOutbox(w http.ResponseWriter, r *http.Request) {
	items, err := h.bridge.ListPendingOutbox(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromOutboxItems(items))
}

// AcknowledgeOutbox godoc
// @Summary     Acknowledge a delivery
// @Description Marks one outbox item as sent after the gateway delivered it. Repeat calls are no-ops.
// @Tags        outbox
// @Produce     json
// @Param       id path string true "Outbox item id"
// @Success     200 {object} response.OutboxResponse
// @Failure     404 {object} map[string]string
// @Router      /api/whatsapp/outbox/{id}/sent [post]
func (h *WhatsAppHandler) AcknowledgeOutbox(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.bridge.AcknowledgeOutbox(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromOutboxItem(item))
}

// Stats godoc
// @Summary     Aggregate counters
// @Description Conversation and message counts for the dashboard header.
// @Tags        stats
// @Produce     json
// @Success     200 {object} response.StatsResponse
// @Failure     500 {object} map[string]string
// @Router      /api/whatsapp/stats [get]
func (h *WhatsAppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bridge.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, response.StatsPayload{
		TotalConversations:  stats.TotalConversations,
		ActiveConversations: stats.ActiveConversations,
		TotalMessages:       stats.TotalMessages,
		Incoming:            stats.Incoming,
		Outgoing:            stats.Outgoing,
		UnreadCount:         stats.UnreadCount,
	})
}

// ControlDispatcher godoc
// @Summary     Control the dispatcher
// @Description Starts or stops the in-process outbox dispatcher.
// @Tags        dispatcher
// @Accept      json
// @Produce     json
// @Param       request body request.DispatcherControl true "Dispatcher action (start|stop)"
// @Success     200 {object} response.DispatcherControlResponse
// @Failure     400 {object} map[string]string
// @Router      /api/whatsapp/dispatcher [post]
func (h *WhatsAppHandler) ControlDispatcher(w http.ResponseWriter, r *http.Request) {
	if h.dispatcher == nil {
		response.RespondError(w, http.StatusBadRequest, "no in-process dispatcher configured")
		return
	}

	var req request.DispatcherControl
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "start":
		if err := h.dispatcher.Start(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, response.DispatcherControlPayload{Message: "dispatcher started"})

	case "stop":
		if err := h.dispatcher.Stop(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, response.DispatcherControlPayload{Message: "dispatcher stopped"})

	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start' or 'stop'")
	}
}
