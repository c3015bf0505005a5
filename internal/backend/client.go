// Package backend is the HTTP client for the external reservation API, the
// source of truth for shifts, slots and reservations. Every call takes a
// context; cancelling it aborts the request. There are no retries here —
// a failed fetch propagates and the caller decides what to show.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL, apiKey string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ===============================
// Reads
// ===============================

// TherapistSlots fetches one therapist's reservable slots for a date
// (YYYY-MM-DD, business timezone).
func (c *Client) TherapistSlots(ctx context.Context, therapistID, date string) (*TherapistSlotsResponse, error) {
	q := url.Values{"date": {date}}
	path := fmt.Sprintf("/therapists/%s/availability_slots", url.PathEscape(therapistID))

	var resp TherapistSlotsResponse
	if err := c.getJSON(ctx, path, q, &resp); err != nil {
		return nil, fmt.Errorf("therapist slots %s: %w", therapistID, err)
	}
	return &resp, nil
}

// DaySummary fetches the 7-day availability window for a shop profile and
// validates it against the day-summary contract before returning it.
func (c *Client) DaySummary(ctx context.Context, profileID string) (*DaySummaryResponse, error) {
	path := fmt.Sprintf("/profiles/%s/availability_slots", url.PathEscape(profileID))

	var resp DaySummaryResponse
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("day summary %s: %w", profileID, err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("day summary %s: %w", profileID, err)
	}
	return &resp, nil
}

// ShopReservationsForDay loads a shop's reservations for mode "today" or
// "tomorrow". The date window is resolved entirely by the backend; doing any
// date arithmetic here would duplicate the business-timezone logic in two
// systems.
func (c *Client) ShopReservationsForDay(ctx context.Context, profileID, mode string) ([]ReservationItem, error) {
	if mode != "today" && mode != "tomorrow" {
		return nil, fmt.Errorf("reservations %s: unsupported mode %q", profileID, mode)
	}

	q := url.Values{"mode": {mode}}
	path := fmt.Sprintf("/profiles/%s/reservations", url.PathEscape(profileID))

	var resp ReservationsResponse
	if err := c.getJSON(ctx, path, q, &resp); err != nil {
		return nil, fmt.Errorf("reservations %s: %w", profileID, err)
	}
	return resp.Reservations, nil
}

// ===============================
// Writes
// ===============================

// SubmitReservation forwards a reservation request. Conflict detection
// happens in the backend at write time; a 409 surfaces as IsConflict.
func (c *Client) SubmitReservation(ctx context.Context, req SubmitReservationRequest) (*SubmitReservationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("submit reservation: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("submit reservation: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	var resp SubmitReservationResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("submit reservation: %w", err)
	}
	return &resp, nil
}

// ===============================
// Transport
// ===============================

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dest any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	return c.do(req, dest)
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("backend request failed",
			zap.String("url", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
		return StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
