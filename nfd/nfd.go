// Package nfd resolves NFDomains names (eg. "alice.algo") to Algorand
// addresses through the public NFD API.
package nfd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tranvictor/algosend/util/log"
)

const (
	MainnetAPI = "https://api.nf.domains"
	TestnetAPI = "https://api.testnet.nf.domains"

	defaultTimeout = 10 * time.Second
)

var ErrNotFound = errors.New("nfd: name not found")

// Client talks to an NFD API deployment. The zero value is not usable, see
// NewClient.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: defaultTimeout},
	}
}

// record is the subset of the "brief" view of an NFD we rely on.
type record struct {
	Name           string   `json:"name"`
	Owner          string   `json:"owner"`
	DepositAccount string   `json:"depositAccount"`
	CaAlgo         []string `json:"caAlgo"`
}

func (c *Client) lookupURL(name string) string {
	return fmt.Sprintf("%s/nfd/%s?view=brief&poll=false", c.BaseURL, url.PathEscape(name))
}

// ResolveDomain returns the deposit account of name, falling back to its
// owner. The returned string is whatever the API answered: callers must
// validate it as an address.
func (c *Client) ResolveDomain(ctx context.Context, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("nfd: empty name")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(name), nil)
	if err != nil {
		return "", fmt.Errorf("nfd: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("nfd: looking up %s: %w", name, err)
	}
	defer resp.Body.Close()
	log.Resolver.Debug().
		Str("name", name).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("nfd lookup")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("nfd: looking up %s: unexpected status %d: %s",
			name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return "", fmt.Errorf("nfd: decoding %s: %w", name, err)
	}
	if rec.DepositAccount != "" {
		return rec.DepositAccount, nil
	}
	return rec.Owner, nil
}
