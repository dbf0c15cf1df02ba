// Package requestctx collects facts about an inbound request: client
// address, coarse location and device. Only the geolocation lookup touches
// the network.
package requestctx

import (
	"context"
	"net/http"
	"time"

	"github.com/blogem/tracker/models"
)

// TimestampLayout is the display format of RequestRecord.Timestamp
const TimestampLayout = "2006-01-02 @ 15:04"

// Collector builds request records
type Collector struct {
	geo      Geolocator
	location *time.Location
	now      func() time.Time
}

// NewCollector creates a collector that stamps records in location
func NewCollector(geo Geolocator, location *time.Location) *Collector {
	if location == nil {
		location = time.UTC
	}
	return &Collector{geo: geo, location: location, now: time.Now}
}

// Collect gathers the record for r, handled by the endpoint named route
func (c *Collector) Collect(ctx context.Context, r *http.Request, route string) models.RequestRecord {
	ip := ClientIP(r)

	referrer := r.Referer()
	if referrer == "" {
		referrer = models.DirectReferrer
	}

	return models.RequestRecord{
		Timestamp:  c.now().In(c.location).Format(TimestampLayout),
		IPAddress:  ip,
		GeoData:    c.geo.Lookup(ctx, ip),
		DeviceInfo: ParseDevice(r.UserAgent()),
		Route:      route,
		Method:     r.Method,
		Referrer:   referrer,
	}
}
