package requestctx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/maypok86/otter"
	"go.uber.org/zap"

	"github.com/blogem/tracker/metrics"
	"github.com/blogem/tracker/models"
)

// Geolocator resolves a client address to a coarse location. Lookup never
// fails: it returns a sentinel instead.
type Geolocator interface {
	Lookup(ctx context.Context, ip string) models.GeoData
}

// GeolocatorConfig configures the HTTP geolocation client
type GeolocatorConfig struct {
	BaseURL   string        // e.g. http://ip-api.com/json
	Timeout   time.Duration // per lookup
	CacheSize int
	CacheTTL  time.Duration
}

// ipAPIResponse is the subset of the ip-api.com payload we read
type ipAPIResponse struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	RegionName  string `json:"regionName"`
	ISP         string `json:"isp"`
	Timezone    string `json:"timezone"`
}

// HTTPGeolocator looks addresses up with GET {base}/{ip}. Successful
// answers are cached per address for CacheTTL.
type HTTPGeolocator struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	cache   otter.Cache[string, models.GeoData]
	logger  *zap.SugaredLogger
}

// NewHTTPGeolocator creates a geolocation client
func NewHTTPGeolocator(cfg GeolocatorConfig, logger *zap.SugaredLogger) (*HTTPGeolocator, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1024
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	cache, err := otter.MustBuilder[string, models.GeoData](cfg.CacheSize).
		Cost(func(_ string, _ models.GeoData) uint32 { return 1 }).
		WithTTL(cfg.CacheTTL).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create geolocation cache: %w", err)
	}

	return &HTTPGeolocator{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   cache,
		logger:  logger,
	}, nil
}

// Lookup returns the location of ip
func (g *HTTPGeolocator) Lookup(ctx context.Context, ip string) models.GeoData {
	if IsLocalAddress(ip) {
		metrics.GeolocationLookups.WithLabelValues("local").Inc()
		return models.LocalGeoData()
	}

	if cached, ok := g.cache.Get(ip); ok {
		metrics.GeolocationLookups.WithLabelValues("cached").Inc()
		return cached
	}

	data, err := g.request(ctx, ip)
	if err != nil {
		g.logger.Errorw("Geolocation request failed", "ip", ip, "error", err)
		metrics.GeolocationLookups.WithLabelValues("failed").Inc()
		return models.UnknownGeoData()
	}

	geo := models.GeoData{
		Country:     orUnknown(data.Country),
		CountryCode: orUnknown(data.CountryCode),
		City:        orUnknown(data.City),
		Region:      orUnknown(data.RegionName),
		ISP:         orUnknown(data.ISP),
		Timezone:    orUnknown(data.Timezone),
	}
	g.cache.Set(ip, geo)
	metrics.GeolocationLookups.WithLabelValues("success").Inc()
	return geo
}

// Close releases the cache
func (g *HTTPGeolocator) Close() {
	g.cache.Close()
}

func (g *HTTPGeolocator) request(ctx context.Context, ip string) (*ipAPIResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/"+url.PathEscape(ip), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var data ipAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if data.Status != "success" {
		return nil, fmt.Errorf("lookup status %q", data.Status)
	}
	return &data, nil
}

func orUnknown(v string) string {
	if v == "" {
		return models.UnknownGeoData().Country
	}
	return v
}
