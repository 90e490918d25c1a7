package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blazeos/blaze-bridge/internal/events"
	"github.com/blazeos/blaze-bridge/internal/handler"
	"github.com/blazeos/blaze-bridge/internal/repository/memory"
	routes "github.com/blazeos/blaze-bridge/internal/router"
	"github.com/blazeos/blaze-bridge/internal/service"
	"github.com/google/uuid"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	bridge := service.NewBridgeService(
		memory.NewConversationRepo(),
		memory.NewMessageRepo(),
		memory.NewOutboxRepo(),
		events.NopPublisher{},
		service.Config{},
	)

	mux := http.NewServeMux()
	routes.Register(mux, routes.AppDeps{
		Home:     handler.NewHomeHandler(),
		Webhook:  handler.NewWebhookHandler(bridge),
		WhatsApp: handler.NewWhatsAppHandler(bridge, nil),
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	Timestamp string          `json:"timestamp"`
}

type flatWebhook struct {
	Success        bool   `json:"success"`
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	Duplicate      bool   `json:"duplicate"`
	Error          string `json:"error"`
	Timestamp      string `json:"timestamp"`
}

func TestWebhook_PostCreatesConversation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/webhook/whatsapp", map[string]any{
		"from":      "0821234567@s.whatsapp.net",
		"pushName":  "Thandi",
		"body":      "hello",
		"messageId": "wamid.001",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decode[flatWebhook](t, resp)
	if !body.Success {
		t.Fatalf("success = false: %+v", body)
	}
	if body.MessageID == "" || body.ConversationID == "" {
		t.Fatalf("flat body missing ids: %+v", body)
	}
	// Flat contract: no envelope timestamp field.
	if body.Timestamp != "" {
		t.Fatalf("webhook response must not carry the envelope timestamp")
	}

	// Conversation is visible to the dashboard.
	resp, err := http.Get(srv.URL + "/api/whatsapp/conversations")
	if err != nil {
		t.Fatalf("GET conversations: %v", err)
	}
	env := decode[envelope](t, resp)
	if !env.Success {
		t.Fatalf("envelope success = false")
	}
	var convs []map[string]any
	if err := json.Unmarshal(env.Data, &convs); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convs))
	}
	if convs[0]["phone"] != "27821234567" {
		t.Fatalf("phone = %v", convs[0]["phone"])
	}
}

func TestWebhook_MissingPhone(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/webhook/whatsapp", map[string]any{"body": "no sender"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decode[flatWebhook](t, resp)
	if body.Success || body.Error == "" {
		t.Fatalf("expected flat error body, got %+v", body)
	}
}

func TestWebhook_GetProbe(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/webhook/whatsapp")
	if err != nil {
		t.Fatalf("GET webhook: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	probe := decode[map[string]string](t, resp)
	if probe["status"] != "active" || probe["service"] == "" {
		t.Fatalf("unexpected probe body: %v", probe)
	}
}

func TestSendOutboxAckCycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Queue an outbound message by raw phone.
	resp := postJSON(t, srv.URL+"/api/whatsapp/send", map[string]any{
		"phone": "0829998888",
		"body":  "your order is ready",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send status = %d, want 200", resp.StatusCode)
	}
	env := decode[envelope](t, resp)
	var sent map[string]any
	if err := json.Unmarshal(env.Data, &sent); err != nil {
		t.Fatalf("unmarshal send data: %v", err)
	}
	if sent["status"] != "queued" {
		t.Fatalf("message status = %v, want queued", sent["status"])
	}

	// Gateway polls the outbox.
	resp, err := http.Get(srv.URL + "/api/whatsapp/outbox")
	if err != nil {
		t.Fatalf("GET outbox: %v", err)
	}
	env = decode[envelope](t, resp)
	var items []map[string]any
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("unmarshal outbox: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("outbox items = %d, want 1", len(items))
	}
	itemID := items[0]["id"].(string)

	// Gateway acknowledges delivery.
	resp = postJSON(t, srv.URL+"/api/whatsapp/outbox/"+itemID+"/sent", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ack status = %d, want 200", resp.StatusCode)
	}
	env = decode[envelope](t, resp)
	var acked map[string]any
	if err := json.Unmarshal(env.Data, &acked); err != nil {
		t.Fatalf("unmarshal ack: %v", err)
	}
	if acked["status"] != "sent" {
		t.Fatalf("item status = %v, want sent", acked["status"])
	}

	// Queue drains.
	resp, err = http.Get(srv.URL + "/api/whatsapp/outbox")
	if err != nil {
		t.Fatalf("GET outbox: %v", err)
	}
	env = decode[envelope](t, resp)
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("unmarshal outbox: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("outbox items after ack = %d, want 0", len(items))
	}
}

func TestSend_ValidationErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/whatsapp/send", map[string]any{"phone": "0829998888"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty body: status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/whatsapp/send", map[string]any{"phone": "garbage", "body": "x"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad phone: status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAck_UnknownItem(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, fmt.Sprintf("%s/api/whatsapp/outbox/%s/sent", srv.URL, uuid.New()), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestConversationLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/webhook/whatsapp", map[string]any{
		"from": "0821234567", "body": "hey",
	})
	created := decode[flatWebhook](t, resp)

	// Partial update.
	resp, err := putJSON(srv.URL+"/api/whatsapp/conversations/"+created.ConversationID, map[string]any{
		"labels": []string{"lead"},
		"notes":  "asked about pricing",
	})
	if err != nil {
		t.Fatalf("PUT conversation: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}
	env := decode[envelope](t, resp)
	var conv map[string]any
	if err := json.Unmarshal(env.Data, &conv); err != nil {
		t.Fatalf("unmarshal conversation: %v", err)
	}
	if conv["notes"] != "asked about pricing" {
		t.Fatalf("notes = %v", conv["notes"])
	}

	// Mark read.
	resp = postJSON(t, srv.URL+"/api/whatsapp/conversations/"+created.ConversationID+"/read", nil)
	env = decode[envelope](t, resp)
	if err := json.Unmarshal(env.Data, &conv); err != nil {
		t.Fatalf("unmarshal conversation: %v", err)
	}
	if conv["unreadCount"].(float64) != 0 {
		t.Fatalf("unreadCount = %v after read", conv["unreadCount"])
	}

	// Invalid status value rejected.
	resp, err = putJSON(srv.URL+"/api/whatsapp/conversations/"+created.ConversationID, map[string]any{
		"status": "paused",
	})
	if err != nil {
		t.Fatalf("PUT conversation: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status: got %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown id is a 404.
	resp, err = http.Get(fmt.Sprintf("%s/api/whatsapp/conversations/%s", srv.URL, uuid.New()))
	if err != nil {
		t.Fatalf("GET conversation: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id: got %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestStatsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	postJSON(t, srv.URL+"/api/webhook/whatsapp", map[string]any{"from": "0821111111", "body": "a"}).Body.Close()
	postJSON(t, srv.URL+"/api/webhook/whatsapp", map[string]any{"from": "0822222222", "body": "b"}).Body.Close()

	resp, err := http.Get(srv.URL + "/api/whatsapp/stats")
	if err != nil {
		t.Fatalf("GET stats: %v", err)
	}
	env := decode[envelope](t, resp)
	var stats map[string]float64
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats["totalConversations"] != 2 || stats["incoming"] != 2 || stats["unreadCount"] != 2 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestDispatcherControl_NotConfigured(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/whatsapp/dispatcher", map[string]any{"action": "start"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/whatsapp/nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func putJSON(url string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}
