package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
)

const (
	DefaultBaseURL = "https://graph.facebook.com/v19.0"

	// templateName must match the template approved in the WhatsApp
	// Business account; its body takes seven positional parameters.
	templateName = "booking_pre_confirmation"
)

// Client talks to the WhatsApp Cloud messaging API.
type Client struct {
	Token         string
	PhoneNumberID string
	BaseURL       string
	HTTP          *http.Client
}

func NewClient(token, phoneNumberID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Token:         strings.TrimSpace(token),
		PhoneNumberID: strings.TrimSpace(phoneNumberID),
		BaseURL:       strings.TrimRight(baseURL, "/"),
		HTTP:          &http.Client{},
	}
}

// Configured reports whether the WhatsApp subsystem has credentials.
// An unconfigured client is skipped silently, never an error.
func (c *Client) Configured() bool {
	return c != nil && c.Token != "" && c.PhoneNumberID != ""
}

type templateRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendTemplate delivers one templated message. The params slice is
// passed through positionally; the provider does not validate count or
// order against the template.
func (c *Client) SendTemplate(ctx context.Context, to, langCode string, params []string) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp client not configured")
	}

	parameters := make([]parameter, 0, len(params))
	for _, p := range params {
		parameters = append(parameters, parameter{Type: "text", Text: p})
	}

	payload := templateRequest{
		MessagingProduct: "whatsapp",
		To:               strings.TrimSpace(to),
		Type:             "template",
		Template: template{
			Name:     templateName,
			Language: language{Code: langCode},
			Components: []component{
				{Type: "body", Parameters: parameters},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp API error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && len(parsed.Messages) > 0 {
		logger.InfoContext(ctx, "WhatsApp template message sent",
			"to", payload.To, "message_id", parsed.Messages[0].ID)
	}

	return nil
}
