package services

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lavandaria-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type gatewayRecorder struct {
	mu       sync.Mutex
	requests []map[string]string
	respond  func(w http.ResponseWriter)
}

func (g *gatewayRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		g.mu.Lock()
		g.requests = append(g.requests, map[string]string{
			"from":    r.PostFormValue("from"),
			"to":      r.PostFormValue("to"),
			"message": r.PostFormValue("message"),
			"auth":    r.Header.Get("Authorization"),
		})
		g.mu.Unlock()
		g.respond(w)
	}
}

func newTestNotifier(t *testing.T, respond func(w http.ResponseWriter)) (*Notifier, *gatewayRecorder) {
	t.Helper()
	gateway := &gatewayRecorder{respond: respond}
	server := httptest.NewServer(gateway.handler())
	t.Cleanup(server.Close)

	t.Setenv("MOZESMS_URL", server.URL)
	t.Setenv("MOZESMS_TOKEN", "test-token")
	t.Setenv("SMS_PROVIDER", "mozesms")

	return NewNotifier(nil), gateway
}

func readyOrder(name, phone string) models.Order {
	return models.Order{
		ID:       uuid.New(),
		Status:   models.OrderStatusReady,
		Customer: models.Customer{Name: name, Phone: phone},
	}
}

func TestNotifyReadyOrderSendsWithCountryPrefix(t *testing.T) {
	notifier, gateway := newTestNotifier(t, func(w http.ResponseWriter) {
		w.Write([]byte(`{"code": 200}`))
	})

	order := readyOrder("Ana Macamo", "841234567")
	results := notifier.NotifyReadyOrders([]models.Order{order})

	assert.Len(t, results, 1)
	assert.Equal(t, NotifySent, results[0].Status)
	assert.Equal(t, order.ID, results[0].OrderID)

	assert.Len(t, gateway.requests, 1)
	assert.Equal(t, "258841234567", gateway.requests[0]["to"])
	assert.Equal(t, "ESHOP", gateway.requests[0]["from"])
	assert.Equal(t, "Bearer test-token", gateway.requests[0]["auth"])
	assert.Contains(t, gateway.requests[0]["message"], "Ana Macamo")
	assert.Contains(t, gateway.requests[0]["message"], order.ID.String())
}

func TestNotifySkipsOrdersNotReady(t *testing.T) {
	notifier, gateway := newTestNotifier(t, func(w http.ResponseWriter) {
		w.Write([]byte(`{"code": 200}`))
	})

	order := readyOrder("Ana Macamo", "841234567")
	order.Status = models.OrderStatusPending

	results := notifier.NotifyReadyOrders([]models.Order{order})

	assert.Len(t, results, 1)
	assert.Equal(t, NotifySkipped, results[0].Status)
	assert.Contains(t, results[0].Detail, "not ready")
	assert.Empty(t, gateway.requests, "no outbound call for a pending order")
}

func TestNotifyReportsGatewayErrorKey(t *testing.T) {
	notifier, _ := newTestNotifier(t, func(w http.ResponseWriter) {
		w.Write([]byte(`{"error": "insufficient balance"}`))
	})

	results := notifier.NotifyReadyOrders([]models.Order{readyOrder("Ana", "841234567")})

	assert.Len(t, results, 1)
	assert.Equal(t, NotifyFailed, results[0].Status)
	assert.Contains(t, results[0].Detail, "insufficient balance")
}

func TestNotifyHandlesConcatenatedJSONBody(t *testing.T) {
	notifier, _ := newTestNotifier(t, func(w http.ResponseWriter) {
		w.Write([]byte(`{"code": 200, "message_id": 1}{"code": 200, "message_id": 2}`))
	})

	results := notifier.NotifyReadyOrders([]models.Order{readyOrder("Ana", "841234567")})

	assert.Len(t, results, 1)
	assert.Equal(t, NotifySent, results[0].Status)
}

func TestNotifyFailsOnNon2xxGatewayStatus(t *testing.T) {
	notifier, _ := newTestNotifier(t, func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	})

	results := notifier.NotifyReadyOrders([]models.Order{readyOrder("Ana", "841234567")})

	assert.Len(t, results, 1)
	assert.Equal(t, NotifyFailed, results[0].Status)
	assert.Contains(t, results[0].Detail, "502")
}

func TestSplitConcatenatedJSON(t *testing.T) {
	parts, err := splitConcatenatedJSON(`{"code": 200}`)
	assert.NoError(t, err)
	assert.Len(t, parts, 1)
	assert.Equal(t, float64(200), parts[0]["code"])

	parts, err = splitConcatenatedJSON(`{"code": 200}{"error": "late failure"}`)
	assert.NoError(t, err)
	assert.Len(t, parts, 2)
	assert.Equal(t, "late failure", parts[1]["error"])

	_, err = splitConcatenatedJSON(`{"code": `)
	assert.Error(t, err)
}
