// Package monitor records visitor requests and reads them back for the
// admin panel. Monitoring never fails the request being monitored.
package monitor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/tracker/metrics"
	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/requestctx"
	"github.com/blogem/tracker/storage"
)

const defaultTimeout = 10 * time.Second

// RequestMonitor collects a record per request and persists it
type RequestMonitor struct {
	collector *requestctx.Collector
	store     storage.RequestStore
	logger    *zap.SugaredLogger
	timeout   time.Duration
}

// NewRequestMonitor creates a monitor. Each Monitor call is bounded by timeout
// (10s when zero), independent of the client connection.
func NewRequestMonitor(collector *requestctx.Collector, store storage.RequestStore, logger *zap.SugaredLogger, timeout time.Duration) *RequestMonitor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RequestMonitor{
		collector: collector,
		store:     store,
		logger:    logger,
		timeout:   timeout,
	}
}

// Monitor records r under the logical endpoint name route. Errors and panics
// are logged and swallowed.
func (m *RequestMonitor) Monitor(r *http.Request, route string) {
	defer func() {
		if rec := recover(); rec != nil {
			m.logger.Errorw("Error monitoring request", "route", route, "panic", fmt.Sprint(rec))
			metrics.MonitoredRequests.WithLabelValues("panic").Inc()
		}
	}()

	// a client hanging up must not lose the record
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), m.timeout)
	defer cancel()

	record := m.collector.Collect(ctx, r, route)
	if err := m.store.SaveRecord(ctx, record); err != nil {
		m.logger.Errorw("Error monitoring request", "route", route, "error", err)
		metrics.MonitoredRequests.WithLabelValues("error").Inc()
		return
	}

	m.logger.Debugw("Request monitored", "route", route, "ip", record.IPAddress, "country", record.GeoData.Country)
	metrics.MonitoredRequests.WithLabelValues("saved").Inc()
}

// GetRequestData returns up to limit records newest first, or nil when the
// store cannot be read. limit <= 0 returns everything.
func (m *RequestMonitor) GetRequestData(ctx context.Context, limit int) []models.RequestRecord {
	records, err := m.store.Records(ctx, limit)
	if err != nil {
		m.logger.Errorw("Error getting request data", "error", err)
		return nil
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// GetStorageStatus describes the store; failures are reported in the result
func (m *RequestMonitor) GetStorageStatus(ctx context.Context) models.StorageStatus {
	status, err := m.store.Status(ctx)
	if err != nil {
		m.logger.Errorw("Error getting storage status", "error", err)
		return models.StorageStatusError(err)
	}
	return status
}
