package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

const (
	colorBlurple = 0x5865F2 // no trend yet
	colorGreen   = 0x2ECC71 // TCGplayer NM rose
	colorRed     = 0xE74C3C // TCGplayer NM fell
)

const collectingDescription = "⌛ Collecting initial price data...\n" +
	"More data points are needed to show price movement."

// DiscordPresenter implements Presenter via a Discord webhook. Each entry
// owns one webhook message that is edited in place on later cycles.
type DiscordPresenter struct {
	webhookURL string
	client     *http.Client
	log        *slog.Logger
	now        func() time.Time
}

// NewDiscordPresenter creates a new DiscordPresenter.
func NewDiscordPresenter(webhookURL string, opts ...DiscordOption) *DiscordPresenter {
	d := &DiscordPresenter{
		webhookURL: strings.TrimRight(webhookURL, "/"),
		client:     http.DefaultClient,
		log:        slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordPresenter.
type DiscordOption func(*DiscordPresenter)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordPresenter) {
		d.client = c
	}
}

// WithLogger sets the presenter logger.
func WithLogger(l *slog.Logger) DiscordOption {
	return func(d *DiscordPresenter) {
		d.log = l
	}
}

// WithNowFunc overrides the clock used for the embed timestamp.
func WithNowFunc(fn func() time.Time) DiscordOption {
	return func(d *DiscordPresenter) {
		d.now = fn
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
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
	Footer      *discordFooter      `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordMessage struct {
	ID string `json:"id"`
}

// Present edits the entry's existing message, or posts a new one when
// there is none or the edit fails.
func (d *DiscordPresenter) Present(
	ctx context.Context,
	entry *domain.WatchlistEntry,
	history []domain.PriceHistoryPoint,
) (string, error) {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{d.buildEmbed(entry, history)},
	}

	if ref := entry.DashboardMessageRef; ref != "" {
		err := d.send(ctx, http.MethodPatch, d.webhookURL+"/messages/"+url.PathEscape(ref), payload, nil)
		if err == nil {
			d.log.Debug("updated dashboard message", "card", entry.Label(), "message", ref)
			return ref, nil
		}
		if ctx.Err() != nil {
			return "", err
		}
		d.log.Info("could not edit dashboard message, creating a new one",
			"card", entry.Label(),
			"message", ref,
			"error", err,
		)
	}

	var msg discordMessage
	if err := d.send(ctx, http.MethodPost, d.webhookURL+"?wait=true", payload, &msg); err != nil {
		return "", err
	}
	if msg.ID == "" {
		return "", fmt.Errorf("discord returned a message without an id")
	}

	d.log.Info("created dashboard message", "card", entry.Label(), "message", msg.ID)
	return msg.ID, nil
}

func (d *DiscordPresenter) buildEmbed(
	entry *domain.WatchlistEntry,
	history []domain.PriceHistoryPoint,
) discordEmbed {
	embed := discordEmbed{
		Title:     fmt.Sprintf("%s - %s (#%s)", entry.CardName, entry.SetName, entry.CollectorNumber),
		URL:       entry.ReferenceURL,
		Color:     colorBlurple,
		Footer:    &discordFooter{Text: "Last Updated"},
		Timestamp: d.now().UTC().Format(time.RFC3339),
	}

	if entry.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: entry.ImageURL}
	}

	if len(history) < 2 {
		embed.Description = collectingDescription
		return embed
	}

	latest := &history[len(history)-1]
	prev := &history[len(history)-2]

	embed.Color = trendColor(latest, prev)
	embed.Fields = priceFields(latest, prev)
	embed.Description = fmt.Sprintf("%d price snapshots since %s.",
		len(history), history[0].Timestamp.UTC().Format("2006-01-02"))

	return embed
}

func trendColor(latest, prev *domain.PriceHistoryPoint) int {
	now, ok := latest.Price(domain.VendorTCGPlayer, domain.ConditionNM)
	if !ok {
		return colorBlurple
	}
	before, ok := prev.Price(domain.VendorTCGPlayer, domain.ConditionNM)
	if !ok {
		return colorBlurple
	}
	switch now.Cmp(before) {
	case 1:
		return colorGreen
	case -1:
		return colorRed
	default:
		return colorBlurple
	}
}

func priceFields(latest, prev *domain.PriceHistoryPoint) []discordEmbedField {
	var fields []discordEmbedField

	for _, v := range domain.ListingVendors {
		var lines []string
		for _, c := range domain.Conditions {
			p, ok := latest.Price(v, c)
			if !ok {
				continue
			}
			line := fmt.Sprintf("%s %s", c, money(p))
			if before, ok := prev.Price(v, c); ok {
				line += delta(p, before)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		fields = append(fields, discordEmbedField{
			Name:   v.DisplayName(),
			Value:  strings.Join(lines, "\n"),
			Inline: true,
		})
	}

	if latest.ReferencePrice != nil {
		fields = append(fields, discordEmbedField{
			Name:   domain.VendorScryfall.DisplayName(),
			Value:  money(*latest.ReferencePrice),
			Inline: true,
		})
	}

	if market := marketLines(latest); len(market) > 0 {
		fields = append(fields, discordEmbedField{
			Name:  "TCGplayer Market",
			Value: strings.Join(market, "\n"),
		})
	}

	return fields
}

func marketLines(p *domain.PriceHistoryPoint) []string {
	var lines []string
	if p.LastSoldPrice != nil {
		lines = append(lines, "Last sold "+money(*p.LastSoldPrice))
	}
	if p.TotalSold != nil && *p.TotalSold > 0 {
		lines = append(lines, fmt.Sprintf("%d sold", *p.TotalSold))
	}
	if p.ListingCount != nil && *p.ListingCount > 0 {
		lines = append(lines, fmt.Sprintf("%d listed", *p.ListingCount))
	}
	if p.Volatility != nil && *p.Volatility != "" {
		lines = append(lines, *p.Volatility)
	}
	return lines
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func delta(now, before decimal.Decimal) string {
	diff := now.Sub(before)
	switch diff.Sign() {
	case 1:
		return " (+" + money(diff) + ")"
	case -1:
		return " (-" + money(diff.Neg()) + ")"
	default:
		return ""
	}
}

func (d *DiscordPresenter) send(
	ctx context.Context,
	method, endpoint string,
	payload discordWebhookPayload,
	out any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
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

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding discord response: %w", err)
	}
	return nil
}
