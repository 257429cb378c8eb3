package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"golang.org/x/time/rate"
)

// tokens are refreshed this long before PayPal expires them
const tokenExpiryMargin = time.Minute

type Config struct {
	BaseURL  string
	ClientID string
	Secret   string
	Timeout  time.Duration

	// RateLimit caps outgoing requests per second, zero means unlimited.
	RateLimit float64
	Burst     int
}

// Client talks to the PayPal Orders v2 REST API.
type Client struct {
	baseURL  string
	clientID string
	secret   string
	http     *http.Client
	limiter  *rate.Limiter

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	limit, burst := rate.Inf, cfg.Burst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(limit, burst),
	}
}

// CreateOrder creates a gateway order. requestID makes the call idempotent on PayPal's side.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest, requestID string) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", req, requestID, &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+url.PathEscape(orderID), nil, "", &order)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// CaptureOrder captures an approved order. Repeating the call with the same
// requestID returns the original capture instead of charging twice.
func (c *Client) CaptureOrder(ctx context.Context, orderID, requestID string) (Order, error) {
	var order Order
	path := "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	err := c.do(ctx, http.MethodPost, path, struct{}{}, requestID, &order)
	if err != nil {
		var pe *entities.PaymentError
		if errors.As(err, &pe) && pe.Type == entities.PaymentErrorAPI && pe.StatusCode == http.StatusUnprocessableEntity {
			pe.Type = entities.PaymentErrorCapture
		}
		return Order{}, err
	}
	return order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, requestID string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &entities.PaymentError{Type: entities.PaymentErrorNetwork, Message: "paypal rate limit wait aborted", Err: err}
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Prefer", "return=representation")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set("PayPal-Request-Id", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &entities.PaymentError{Type: entities.PaymentErrorNetwork, Message: "request to paypal failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.resetToken()
		return parseError(resp, entities.PaymentErrorAuthentication)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(resp, entities.PaymentErrorAPI)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &entities.PaymentError{
			Type:       entities.PaymentErrorAPI,
			Message:    "malformed paypal response",
			StatusCode: resp.StatusCode,
			DebugID:    resp.Header.Get("Paypal-Debug-Id"),
			Err:        err,
		}
	}
	return nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &entities.PaymentError{Type: entities.PaymentErrorNetwork, Message: "token request to paypal failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", parseError(resp, entities.PaymentErrorAuthentication)
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseError(resp, entities.PaymentErrorAPI)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil || tr.AccessToken == "" {
		return "", &entities.PaymentError{
			Type:       entities.PaymentErrorAuthentication,
			Message:    "malformed token response",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	c.token = tr.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.token, nil
}

func (c *Client) resetToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}

func parseError(resp *http.Response, t entities.PaymentErrorType) *entities.PaymentError {
	pe := &entities.PaymentError{
		Type:       t,
		StatusCode: resp.StatusCode,
		DebugID:    resp.Header.Get("Paypal-Debug-Id"),
		Message:    http.StatusText(resp.StatusCode),
	}

	var er errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &er) != nil {
		return pe
	}

	switch {
	case er.Name != "":
		pe.Message = er.Name
		if er.Message != "" {
			pe.Message += ": " + er.Message
		}
		if len(er.Details) > 0 && er.Details[0].Issue != "" {
			pe.Message += " (" + er.Details[0].Issue + ")"
		}
	case er.Error != "":
		pe.Message = er.Error
		if er.ErrorDescription != "" {
			pe.Message += ": " + er.ErrorDescription
		}
	}
	if er.DebugID != "" {
		pe.DebugID = er.DebugID
	}
	return pe
}
