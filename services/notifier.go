// services/notifier.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"lavandaria-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const (
	NotifySent    = "sent"
	NotifySkipped = "skipped"
	NotifyFailed  = "failed"
)

type NotifyResult struct {
	OrderID uuid.UUID `json:"orderId"`
	Status  string    `json:"status"`
	Detail  string    `json:"detail"`
}

// Notifier dispatches order-ready SMS messages through the configured
// gateway. Dispatch has no retry logic and no idempotence guarantee:
// re-running the bulk action re-sends messages.
type Notifier struct {
	db            *gorm.DB
	provider      string
	gatewayURL    string
	token         string
	sender        string
	countryPrefix string
	client        *http.Client
	twilio        *twilio.RestClient
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func NewNotifier(db *gorm.DB) *Notifier {
	n := &Notifier{
		db:            db,
		provider:      envOr("SMS_PROVIDER", "mozesms"),
		gatewayURL:    envOr("MOZESMS_URL", "https://api.mozesms.com/message/v2"),
		token:         os.Getenv("MOZESMS_TOKEN"),
		sender:        envOr("MOZESMS_SENDER", "ESHOP"),
		countryPrefix: envOr("SMS_COUNTRY_PREFIX", "258"),
		client:        &http.Client{Timeout: 15 * time.Second},
	}

	if n.provider == "twilio" {
		n.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: os.Getenv("TWILIO_ACCOUNT_SID"),
			Password: os.Getenv("TWILIO_AUTH_TOKEN"),
		})
	}

	return n
}

// NotifyReadyOrders sends the order-ready message for every order in
// status 'ready' and reports a per-order result. Orders in any other
// status are skipped with a warning. Orders must carry their Customer.
func (n *Notifier) NotifyReadyOrders(orders []models.Order) []NotifyResult {
	results := make([]NotifyResult, 0, len(orders))

	for _, order := range orders {
		if order.Status != models.OrderStatusReady {
			log.Printf("Order %s is not ready, skipping notification", order.ID)
			results = append(results, NotifyResult{
				OrderID: order.ID,
				Status:  NotifySkipped,
				Detail:  fmt.Sprintf("order %s is not ready", order.ID),
			})
			continue
		}

		message := fmt.Sprintf("Olá %s, seu pedido #%s está pronto para retirada!",
			order.Customer.Name, order.ID)
		to := n.countryPrefix + order.Customer.Phone

		results = append(results, n.dispatch(order.ID, to, message))
	}

	return results
}

func (n *Notifier) dispatch(orderID uuid.UUID, to, message string) NotifyResult {
	if n.provider == "twilio" {
		return n.dispatchTwilio(orderID, to, message)
	}

	parts, err := n.sendMozeSMS(to, message)
	if err != nil {
		log.Printf("Failed to send message for order %s: %v", orderID, err)
		return NotifyResult{OrderID: orderID, Status: NotifyFailed, Detail: err.Error()}
	}

	for _, part := range parts {
		if gwErr, ok := part["error"]; ok {
			return NotifyResult{
				OrderID: orderID,
				Status:  NotifyFailed,
				Detail:  fmt.Sprintf("gateway error: %v", gwErr),
			}
		}
	}

	return NotifyResult{
		OrderID: orderID,
		Status:  NotifySent,
		Detail:  fmt.Sprintf("status: %v", parts[0]["code"]),
	}
}

func (n *Notifier) dispatchTwilio(orderID uuid.UUID, to, message string) NotifyResult {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+" + to)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := n.twilio.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message for order %s: %v", orderID, err)
		return NotifyResult{OrderID: orderID, Status: NotifyFailed, Detail: err.Error()}
	}

	detail := "message sent"
	if resp.Sid != nil {
		detail = "sid: " + *resp.Sid
	}
	return NotifyResult{OrderID: orderID, Status: NotifySent, Detail: detail}
}

// sendMozeSMS posts one message to the MozeSMS gateway and returns the
// parsed JSON response parts.
func (n *Notifier) sendMozeSMS(to, message string) ([]map[string]interface{}, error) {
	data := url.Values{}
	data.Set("from", n.sender)
	data.Set("to", to)
	data.Set("message", message)

	req, err := http.NewRequest("POST", n.gatewayURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	return splitConcatenatedJSON(strings.TrimSpace(string(body)))
}

// splitConcatenatedJSON parses a gateway body that occasionally contains
// two JSON objects concatenated in a single response, splitting on the
// literal boundary between them.
func splitConcatenatedJSON(raw string) ([]map[string]interface{}, error) {
	chunks := strings.Split(raw, "}{")

	parts := make([]map[string]interface{}, 0, len(chunks))
	for i, chunk := range chunks {
		if i > 0 {
			chunk = "{" + chunk
		}
		if i < len(chunks)-1 {
			chunk = chunk + "}"
		}

		var part map[string]interface{}
		if err := json.Unmarshal([]byte(chunk), &part); err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// StartScheduler re-runs the ready-order dispatch on the given cron
// schedule. Optional; the bulk action stays available either way.
func (n *Notifier) StartScheduler(spec string) error {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		var orders []models.Order
		if err := n.db.Preload("Customer").
			Where("status = ?", models.OrderStatusReady).
			Find(&orders).Error; err != nil {
			log.Printf("Failed to fetch ready orders: %v", err)
			return
		}
		for _, result := range n.NotifyReadyOrders(orders) {
			log.Printf("Order %s: %s (%s)", result.OrderID, result.Status, result.Detail)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Ready-order notification scheduler started")
	return nil
}
