package routes

import (
	"net/http"

	_ "github.com/blazeos/blaze-bridge/internal/docs" // swagger docs
	"github.com/blazeos/blaze-bridge/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home     HomeHandler
	Webhook  WebhookHandler
	WhatsApp WhatsAppHandler
	Events   http.Handler // websocket hub; nil disables /api/ws
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type WhatsAppHandler interface {
	ListConversations(w http.ResponseWriter, r *http.Request)
	GetConversation(w http.ResponseWriter, r *http.Request)
	UpdateConversation(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	ListMessages(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	ListOutbox(w http.ResponseWriter, r *http.Request)
	AcknowledgeOutbox(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	ControlDispatcher(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /api/webhook/whatsapp", d.Webhook.Receive)
	mux.HandleFunc("GET /api/webhook/whatsapp", d.Webhook.Verify)

	mux.HandleFunc("GET /api/whatsapp/conversations", d.WhatsApp.ListConversations)
	mux.HandleFunc("GET /api/whatsapp/conversations/{id}", d.WhatsApp.GetConversation)
	mux.HandleFunc("PUT /api/whatsapp/conversations/{id}", d.WhatsApp.UpdateConversation)
	mux.HandleFunc("POST /api/whatsapp/conversations/{id}/read", d.WhatsApp.MarkRead)
	mux.HandleFunc("GET /api/whatsapp/conversations/{id}/messages", d.WhatsApp.ListMessages)
	mux.HandleFunc("POST /api/whatsapp/send", d.WhatsApp.Send)
	mux.HandleFunc("GET /api/whatsapp/outbox", d.WhatsApp.ListOutbox)
	mux.HandleFunc("POST /api/whatsapp/outbox/{id}/sent", d.WhatsApp.AcknowledgeOutbox)
	mux.HandleFunc("GET /api/whatsapp/stats", d.WhatsApp.Stats)
	mux.HandleFunc("POST /api/whatsapp/dispatcher", d.WhatsApp.ControlDispatcher)

	if d.Events != nil {
		mux.Handle("GET /api/ws", d.Events)
	}

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
