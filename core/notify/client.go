package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Notifier defines the interface for sending image messages.
type Notifier interface {
	// SendImage sends an MMS with the given body and media URL to a phone
	// number in E.164 format. It returns the provider message id, later used
	// to correlate delivery-status callbacks.
	SendImage(ctx context.Context, to, body, mediaURL string) (string, error)
}

// NewClient creates a Notifier backed by the provider's REST messaging API.
func NewClient(cfg Config) Notifier {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &restNotifier{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type restNotifier struct {
	cfg        Config
	httpClient *http.Client
}

// messageResponse is the subset of the provider response we care about.
type messageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"` // error payloads carry the reason here
}

func (n *restNotifier) SendImage(ctx context.Context, to, body, mediaURL string) (string, error) {
	if n.cfg.AccountSID == "" || n.cfg.AuthToken == "" {
		return "", fmt.Errorf("messaging provider credentials are not configured")
	}
	if n.cfg.FromNumber == "" {
		return "", fmt.Errorf("messaging sender number is not configured")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimSuffix(n.cfg.Endpoint, "/"), n.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", n.cfg.FromNumber)
	form.Set("Body", body)
	form.Set("MediaUrl", mediaURL)
	if n.cfg.CallbackURL != "" {
		form.Set("StatusCallback", n.cfg.CallbackURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	var msg messageResponse
	if err := json.Unmarshal(payload, &msg); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg.Message != "" {
			return "", fmt.Errorf("provider rejected message: %s", msg.Message)
		}
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return msg.SID, nil
}
