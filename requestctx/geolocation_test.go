package requestctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/tracker/logging"
	"github.com/blogem/tracker/models"
)

const googleResponse = `{"status":"success","country":"US","countryCode":"US","city":"Mountain View","regionName":"CA","isp":"Google","timezone":"America/Los_Angeles"}`

func newTestGeolocator(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*HTTPGeolocator, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	geo, err := NewHTTPGeolocator(GeolocatorConfig{
		BaseURL:   server.URL + "/json",
		Timeout:   timeout,
		CacheSize: 16,
		CacheTTL:  time.Minute,
	}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(geo.Close)
	return geo, &hits
}

func TestLookupLocalAddressesSkipNetwork(t *testing.T) {
	geo, hits := newTestGeolocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(googleResponse))
	}, time.Second)

	for _, ip := range []string{"127.0.0.1", "localhost", "192.168.1.20", "10.0.0.5", "10.255.255.255"} {
		assert.Equal(t, models.LocalGeoData(), geo.Lookup(context.Background(), ip), ip)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestLookupSuccess(t *testing.T) {
	var path string
	geo, hits := newTestGeolocator(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(googleResponse))
	}, time.Second)

	got := geo.Lookup(context.Background(), "8.8.8.8")
	assert.Equal(t, "/json/8.8.8.8", path)
	assert.Equal(t, models.GeoData{
		Country:     "US",
		CountryCode: "US",
		City:        "Mountain View",
		Region:      "CA",
		ISP:         "Google",
		Timezone:    "America/Los_Angeles",
	}, got)

	// second lookup is served from the cache
	assert.Equal(t, got, geo.Lookup(context.Background(), "8.8.8.8"))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLookupMissingFieldsBecomeUnknown(t *testing.T) {
	geo, _ := newTestGeolocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Netherlands","countryCode":"NL"}`))
	}, time.Second)

	got := geo.Lookup(context.Background(), "1.1.1.1")
	assert.Equal(t, "Netherlands", got.Country)
	assert.Equal(t, "Unknown", got.City)
	assert.Equal(t, "Unknown", got.ISP)
}

func TestLookupFailuresReturnUnknown(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "fail status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo, hits := newTestGeolocator(t, tt.handler, time.Second)

			assert.NotPanics(t, func() {
				assert.Equal(t, models.UnknownGeoData(), geo.Lookup(context.Background(), "1.2.3.4"))
			})
			// failures are not cached
			geo.Lookup(context.Background(), "1.2.3.4")
			assert.Equal(t, int32(2), atomic.LoadInt32(hits))
		})
	}
}

func TestLookupTimeoutReturnsUnknown(t *testing.T) {
	release := make(chan struct{})
	geo, _ := newTestGeolocator(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	start := time.Now()
	got := geo.Lookup(context.Background(), "1.2.3.4")
	assert.Equal(t, models.UnknownGeoData(), got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLookupUnreachableServer(t *testing.T) {
	geo, err := NewHTTPGeolocator(GeolocatorConfig{
		BaseURL: "http://127.0.0.1:1/json",
		Timeout: 200 * time.Millisecond,
	}, logging.Nop())
	require.NoError(t, err)
	defer geo.Close()

	got := geo.Lookup(context.Background(), "9.9.9.9")
	assert.True(t, got.IsUnknown())
}

func TestLookupEscapesAddress(t *testing.T) {
	var rawPath string
	geo, _ := newTestGeolocator(t, func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		w.Write([]byte(googleResponse))
	}, time.Second)

	geo.Lookup(context.Background(), "2001:db8::1")
	assert.True(t, strings.HasPrefix(rawPath, "/json/2001:db8::1"), rawPath)
}
