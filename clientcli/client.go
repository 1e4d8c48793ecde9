package clientcli

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nbd-wtf/go-nostr"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Config holds connection settings for a nosvault server.
type Config struct {
	Endpoint  string
	SecretKey string
}

// Client performs operations against a nosvault server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		config: &Config{
			Endpoint:  endpoint,
			SecretKey: cfg.SecretKey,
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PubKey derives the public key for the configured secret key. The
// public key names the only path the client may upload to.
func (c *Client) PubKey() (string, error) {
	if c.config.SecretKey == "" {
		return "", ErrSecretKeyRequired
	}
	pk, err := nostr.GetPublicKey(c.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("derive public key: %w", err)
	}
	return pk, nil
}

// AuthHeader builds the Authorization header value for a request: a
// signed kind-27235 event over the target URL and method, serialized as
// JSON and base64 encoded under the "Nostr" scheme.
func (c *Client) AuthHeader(url, method string) (string, error) {
	if c.config.SecretKey == "" {
		return "", ErrSecretKeyRequired
	}

	evt := nostr.Event{
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindHTTPAuth,
		Tags: nostr.Tags{
			{"u", url},
			{"method", method},
		},
	}

	if err := evt.Sign(c.config.SecretKey); err != nil {
		return "", fmt.Errorf("sign event: %w", err)
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	return "Nostr " + base64.StdEncoding.EncodeToString(data), nil
}

// Upload uploads a local file into the client's own namespace, the
// single path named by its public key. Returns the remote path.
func (c *Client) Upload(ctx context.Context, localPath string) (string, error) {
	if localPath == "" {
		return "", fmt.Errorf("upload: %w", ErrEmptyPath)
	}

	pubkey, err := c.PubKey()
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("upload: open %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	url := c.config.Endpoint + "/" + pubkey

	auth, err := c.AuthHeader(url, http.MethodPut)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, f)
	if err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload: server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return "/" + pubkey, nil
}

// Download fetches a stored file by path and streams it to w. Reads are
// public, so no signing key is needed. Returns the served content type.
func (c *Client) Download(ctx context.Context, remotePath string, w io.Writer) (string, error) {
	if remotePath == "" {
		return "", fmt.Errorf("download: %w", ErrEmptyPath)
	}

	url := c.config.Endpoint + "/" + strings.TrimPrefix(remotePath, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("download: server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	return resp.Header.Get("Content-Type"), nil
}
