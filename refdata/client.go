package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// DefaultBaseURL is the public reference-data service.
const DefaultBaseURL = "https://data.norge.no"

// DefaultCacheTTL is how long a fetched collection stays fresh. The
// collections change on the order of months, so a day is generous.
const DefaultCacheTTL = 24 * time.Hour

// Reference-data collection endpoints, relative to the base URL.
const (
	mediaTypesPath   = "/reference-data/iana/media-types"
	fileTypesPath    = "/reference-data/eu/file-types"
	openLicensesPath = "/reference-data/open-licenses"
	accessRightsPath = "/reference-data/eu/access-rights"
)

// Client fetches reference-data collections over HTTP and caches them in
// memory with a TTL. It implements Sets. Safe for concurrent use.
//
// Lookups are synchronous but only hit the network when a collection's
// cache is stale; on fetch failure the previous (stale) collection keeps
// serving, and with no cache at all membership degrades to false.
type Client struct {
	baseURL    string
	apiKey     string
	ttl        time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	caches map[string]*collectionCache
}

type collectionCache struct {
	members   map[string]struct{}
	fetchedAt time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the X-API-KEY header sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithCacheTTL overrides the collection cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a reference-data client for the given base URL. An
// empty baseURL selects the public service.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		ttl:        DefaultCacheTTL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
		caches:     make(map[string]*collectionCache),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidMediaType reports whether uri is a known IANA media type.
func (c *Client) ValidMediaType(uri string) bool {
	return c.member(mediaTypesPath, uri, decodeMediaTypes)
}

// ValidFileType reports whether uri is a known EU file type.
func (c *Client) ValidFileType(uri string) bool {
	return c.member(fileTypesPath, uri, decodeFileTypes)
}

// ValidOpenLicense reports whether uri is a known open license.
func (c *Client) ValidOpenLicense(uri string) bool {
	return c.member(openLicensesPath, uri, decodeOpenLicenses)
}

// ValidAccessRight reports whether uri is a known EU access right.
func (c *Client) ValidAccessRight(uri string) bool {
	return c.member(accessRightsPath, uri, decodeAccessRights)
}

func (c *Client) member(path, uri string, decode func([]byte) ([]string, error)) bool {
	members := c.collection(path, decode)
	if members == nil {
		return false
	}
	_, ok := members[stripScheme(uri)]
	return ok
}

// collection returns the cached member set for a path, refreshing it when
// stale. Returns nil when nothing has ever been fetched successfully.
func (c *Client) collection(path string, decode func([]byte) ([]string, error)) map[string]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, ok := c.caches[path]
	if ok && time.Since(cached.fetchedAt) < c.ttl {
		return cached.members
	}

	members, err := c.fetch(path, decode)
	if err != nil {
		c.logger.Warn("reference data fetch failed",
			"path", path,
			"error", err)
		if ok {
			// Serve the stale collection rather than nothing.
			return cached.members
		}
		return nil
	}

	c.caches[path] = &collectionCache{members: members, fetchedAt: time.Now()}
	return members
}

func (c *Client) fetch(path string, decode func([]byte) ([]string, error)) (map[string]struct{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	uris, err := decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	members := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		members[stripScheme(uri)] = struct{}{}
	}
	return members, nil
}

func decodeMediaTypes(body []byte) ([]string, error) {
	var doc struct {
		MediaTypes []struct {
			URI string `json:"uri"`
		} `json:"mediaTypes"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	uris := make([]string, 0, len(doc.MediaTypes))
	for _, mt := range doc.MediaTypes {
		uris = append(uris, mt.URI)
	}
	return uris, nil
}

func decodeFileTypes(body []byte) ([]string, error) {
	var doc struct {
		FileTypes []struct {
			URI string `json:"uri"`
		} `json:"fileTypes"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	uris := make([]string, 0, len(doc.FileTypes))
	for _, ft := range doc.FileTypes {
		uris = append(uris, ft.URI)
	}
	return uris, nil
}

func decodeOpenLicenses(body []byte) ([]string, error) {
	var doc struct {
		OpenLicenses []struct {
			URI string `json:"uri"`
		} `json:"openLicenses"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	uris := make([]string, 0, len(doc.OpenLicenses))
	for _, l := range doc.OpenLicenses {
		uris = append(uris, l.URI)
	}
	return uris, nil
}

func decodeAccessRights(body []byte) ([]string, error) {
	var doc struct {
		AccessRights []struct {
			URI string `json:"uri"`
		} `json:"accessRights"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	uris := make([]string, 0, len(doc.AccessRights))
	for _, ar := range doc.AccessRights {
		uris = append(uris, ar.URI)
	}
	return uris, nil
}
