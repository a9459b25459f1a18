// Package client is the Go counterpart of the browser dashboard controller:
// it authenticates against the API, keeps session state only in the cookie
// jar, and loads all four data feeds as one join-all batch.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"agriinsight/internal/agrodata"
)

// ErrStaleBatch is returned when a newer dashboard load started before this
// one finished; the caller must discard the result instead of rendering it.
var ErrStaleBatch = errors.New("dashboard batch superseded by a newer one")

// Dashboard is the joined result of one fetch batch.
type Dashboard struct {
	Weather agrodata.WeatherReport
	Yield   agrodata.YieldReport
	Soil    agrodata.SoilReport
	Market  agrodata.MarketReport
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	// generation increments on every LoadDashboard call; results from older
	// generations are discarded.
	generation atomic.Uint64
}

// New builds a client for the given API base URL (e.g. "http://localhost:3000").
// The cookie jar carries the auth_token cookie across requests.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s: %d %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s: %d %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	return c.postJSON(ctx, "/auth/register", map[string]string{
		"username": username,
		"password": password,
		"email":    email,
	})
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, username, password string) error {
	return c.postJSON(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// Logout clears the session cookie server-side and in the jar.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/auth/logout", nil)
}

// LoadDashboard fetches weather, yield, soil and market data concurrently
// and joins on all four; a single failure fails the whole batch. If another
// LoadDashboard starts while this one is in flight, the slower batch returns
// ErrStaleBatch so its data is never rendered over newer results.
func (c *Client) LoadDashboard(ctx context.Context, days int, crop string) (*Dashboard, error) {
	if days <= 0 {
		return nil, errors.New("days must be positive")
	}

	gen := c.generation.Add(1)

	var dash Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.getJSON(ctx, fmt.Sprintf("/weather?days=%d", days), &dash.Weather)
	})
	g.Go(func() error {
		return c.getJSON(ctx, fmt.Sprintf("/yield?crop=%s&days=%d", url.QueryEscape(crop), days), &dash.Yield)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/soil?crop="+url.QueryEscape(crop), &dash.Soil)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/market-prices", &dash.Market)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if c.generation.Load() != gen {
		return nil, ErrStaleBatch
	}
	return &dash, nil
}
