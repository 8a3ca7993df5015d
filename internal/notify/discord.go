package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/target-inventory/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // at least twice the desired quantity
	colorYellow = 0xF1C40F // desired quantity reached
	colorRed    = 0xCC0000 // batch overflow
)

const maxEmbeds = 10

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAlert sends a single alert as a Discord embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert)},
	}
	return d.post(ctx, payload)
}

// SendBatchAlert sends multiple alerts as a single Discord message.
func (d *DiscordNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	title string,
) error {
	if len(alerts) == 0 {
		return nil
	}

	limit := min(len(alerts), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&alerts[i]))
	}

	if len(alerts) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more in stock for %s", len(alerts)-maxEmbeds, title),
			Color:       colorRed,
			Description: "Run `target-inventory watch --once` for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(alert *AlertPayload) discordEmbed {
	store := alert.StoreID
	if alert.StoreName != "" {
		store = fmt.Sprintf("%s (%s)", alert.StoreName, alert.StoreID)
	}

	fields := []discordEmbedField{
		{Name: "On Hand", Value: strconv.Itoa(alert.OnHand), Inline: true},
		{Name: "Wanted", Value: strconv.Itoa(alert.DesiredQuantity), Inline: true},
		{Name: "Store", Value: store, Inline: true},
		{Name: "TCIN", Value: alert.TCIN, Inline: true},
	}
	if alert.Price != "" {
		fields = append(fields, discordEmbedField{Name: "Price", Value: alert.Price, Inline: true})
	}

	name := alert.ProductName
	if name == "" {
		name = alert.WatchName
	}

	return discordEmbed{
		Title:  fmt.Sprintf("In Stock: %s", name),
		URL:    alert.ProductURL(),
		Color:  stockColor(alert.OnHand, alert.DesiredQuantity),
		Fields: fields,
	}
}

func stockColor(onHand, desired int) int {
	if onHand >= 2*desired {
		return colorGreen
	}
	return colorYellow
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
