// Package notify pushes record events to the team's chat webhook. Delivery
// is best effort: sends run on a worker pool, are never retried, and a
// failure is only ever logged. The operation that triggered the event has
// already succeeded and must stay that way.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/pkg/clients"
	"go.uber.org/zap"
)

const sendTimeout = time.Second * 10

type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionStatusChanged Action = "status changed"
)

// Event is a snapshot of one record mutation. Exactly one of Payment or
// Gold is set.
type Event struct {
	Action  Action
	Actor   string
	Payment *domain.Payment
	Gold    *domain.GoldPayment
	At      time.Time
}

type Notifier interface {
	Notify(event Event)
}

type Dispatcher struct {
	url       string
	username  string
	avatarURL string
	client    clients.HTTPClientI
	pool      WorkerPoolI
}

func New(url string, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		url:      url,
		username: "shopdesk",
		client:   client,
		pool:     NewWorkerPool(10),
	}
}

// Notify enqueues a send and returns immediately. With no webhook
// configured it is a no-op.
func (d *Dispatcher) Notify(event Event) {
	if d.url == "" {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	err := d.pool.AddTask(context.Background(), func() error {
		return d.send(event)
	})
	if err != nil {
		zap.L().Warn("can't enqueue notification", zap.Error(err))
	}
}

// Wire shapes of the webhook sink.
type webhookMessage struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []embed `json:"embeds"`
}

type embed struct {
	Title  string       `json:"title"`
	Color  int          `json:"color"`
	Fields []embedField `json:"fields"`
	Footer embedFooter  `json:"footer"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

func (d *Dispatcher) send(event Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	body, err := json.Marshal(d.message(event))
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := d.client.Send(ctx, http.MethodPost, d.url, body, headers)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	if statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("send notification: status %d", statusCode)
	}

	zap.L().Debug("notification delivered", zap.String("action", string(event.Action)))
	return nil
}

func (d *Dispatcher) message(event Event) webhookMessage {
	var e embed
	switch {
	case event.Payment != nil:
		e = paymentEmbed(event, event.Payment)
	case event.Gold != nil:
		e = goldEmbed(event, event.Gold)
	}
	e.Footer = embedFooter{Text: event.At.Format(time.RFC1123)}
	return webhookMessage{
		Username:  d.username,
		AvatarURL: d.avatarURL,
		Embeds:    []embed{e},
	}
}

func paymentEmbed(event Event, p *domain.Payment) embed {
	return embed{
		Title: fmt.Sprintf("Payment %s %s", p.ID, event.Action),
		Color: statusColor(p.Status),
		Fields: []embedField{
			{Name: "Requester", Value: p.RequesterName, Inline: true},
			{Name: "Amount", Value: fmt.Sprintf("%.0f x %.0f", p.Amount, p.Price), Inline: true},
			{Name: "Total (Rial)", Value: fmt.Sprintf("%.0f", p.TotalRial), Inline: true},
			{Name: "Status", Value: string(p.Status), Inline: true},
			{Name: "Due", Value: p.DueDate.Format("2006-01-02"), Inline: true},
			{Name: "By", Value: event.Actor, Inline: true},
		},
	}
}

func goldEmbed(event Event, g *domain.GoldPayment) embed {
	return embed{
		Title: fmt.Sprintf("Gold payment for %s %s", g.RequesterName, event.Action),
		Color: statusColor(g.Status),
		Fields: []embedField{
			{Name: "Requester", Value: g.RequesterName, Inline: true},
			{Name: "Amount", Value: fmt.Sprintf("%.0f", g.Amount), Inline: true},
			{Name: "Status", Value: string(g.Status), Inline: true},
			{Name: "By", Value: event.Actor, Inline: true},
		},
	}
}

func statusColor(s domain.Status) int {
	switch s {
	case domain.StatusPaid:
		return 0x2ecc71
	case domain.StatusCancelled:
		return 0xe74c3c
	default:
		return 0xf1c40f
	}
}
