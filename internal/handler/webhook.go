package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/blazeos/blaze-bridge/internal/phone"
	"github.com/blazeos/blaze-bridge/internal/request"
	"github.com/blazeos/blaze-bridge/internal/response"
	"github.com/blazeos/blaze-bridge/internal/service"
)

// WebhookHandler terminates the gateway side of the bridge protocol.
// Its responses are flat JSON, not the envelope the dashboard API uses:
// the gateway contract predates the envelope and pins the shape.
type WebhookHandler struct {
	bridge service.BridgeService
}

// NewWebhookHandler constructs a WebhookHandler around the bridge core.
func NewWebhookHandler(bridge service.BridgeService) *WebhookHandler {
	return &WebhookHandler{bridge: bridge}
}

// Receive godoc
// @Summary     Inbound message webhook
// @Description Accepts one incoming message from the gateway, upserts the conversation and appends the message.
// @Tags        webhook
// @Accept      json
// @Produce     json
// @Param       request body request.InboundMessage true "Gateway webhook payload"
// @Success     200 {object} response.WebhookAccepted
// @Failure     400 {object} response.WebhookError
// @Router      /api/webhook/whatsapp [post]
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req request.InboundMessage

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondFlat(w, http.StatusBadRequest, response.WebhookError{Error: "invalid JSON body"})
		return
	}

	if req.SenderPhone() == "" {
		response.RespondFlat(w, http.StatusBadRequest, response.WebhookError{Error: "missing sender phone"})
		return
	}

	res, err := h.bridge.HandleInbound(r.Context(), service.InboundMessage{
		Phone:      req.SenderPhone(),
		Name:       req.DisplayName(),
		Body:       req.MessageBody(),
		Type:       req.Type,
		MediaURL:   req.MediaLink(),
		ExternalID: req.ExternalID(),
		Timestamp:  req.ParsedTimestamp(),
		IsGroup:    req.IsGroup,
		GroupName:  req.GroupName,
	})
	if err != nil {
		if errors.Is(err, phone.ErrUnresolvable) {
			response.RespondFlat(w, http.StatusBadRequest, response.WebhookError{Error: "sender phone unresolvable"})
			return
		}
		// Past validation the gateway gets a 200 either way; it has no
		// useful reaction to our internal failures and would only
		// retry-storm the endpoint.
		response.RespondFlat(w, http.StatusOK, response.WebhookError{Error: "accepted, processing failed"})
		return
	}

	response.RespondFlat(w, http.StatusOK, response.WebhookAccepted{
		Success:        true,
		MessageID:      res.Message.ID.String(),
		ConversationID: res.Conversation.ID.String(),
		Duplicate:      res.Duplicate,
	})
}

// Verify godoc
// @Summary     Webhook verification probe
// @Description Static liveness payload for the gateway's handshake check.
// @Tags        webhook
// @Produce     json
// @Success     200 {object} response.WebhookStatus
// @Router      /api/webhook/whatsapp [get]
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	response.RespondFlat(w, http.StatusOK, response.WebhookStatus{
		Status:    "active",
		Service:   "blaze-bridge",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
