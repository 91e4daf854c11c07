package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DialTimeout is the connection timeout.
	DialTimeout = 5 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 5 * time.Second

	// serverTokenHeader authenticates against the delivery API.
	serverTokenHeader = "X-Postmark-Server-Token"

	// maxErrorBodyBytes bounds how much of an error response is read for diagnostics.
	maxErrorBodyBytes = 4 << 10
)

// Client sends email through a Postmark-compatible HTTP API.
type Client struct {
	http        *http.Client
	baseURL     string
	serverToken string
	sender      string
}

// NewClient creates an email client for the given API endpoint.
// timeout bounds each send end to end; a hung transport must not
// occupy a request-handling goroutine indefinitely.
func NewClient(baseURL, serverToken, sender string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   DialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: TLSHandshakeTimeout,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		serverToken: serverToken,
		sender:      sender,
	}
}

// sendRequest is the wire format of the delivery API.
type sendRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// Send delivers a single message. A non-2xx response is reported as
// ErrSendFailed with the status for operator diagnosis.
func (c *Client) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		From:     c.sender,
		To:       params.To,
		Subject:  params.Subject,
		HTMLBody: params.HTMLBody,
		TextBody: params.TextBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(serverTokenHeader, c.serverToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
