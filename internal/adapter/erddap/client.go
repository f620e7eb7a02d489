// Package erddap fetches Argo point observations from an ERDDAP tabledap
// service and regroups them into per-cast profiles.
package erddap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/internal/observability"
)

// columns are the tabledap variables projected by every query, in order.
const columns = "platform_number,cycle_number,time,latitude,longitude,pres,temp,psal"

// Client implements argo.Source against one ERDDAP tabledap dataset.
type Client struct {
	baseURL    string
	dataset    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a tabledap client for the dataset hosted at baseURL.
func NewClient(baseURL, dataset string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		dataset:    dataset,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

// QueryRegion fetches every observation inside the query envelope. Any
// non-200 response is an error, including ERDDAP's 404 for a window that
// matches no rows.
func (c *Client) QueryRegion(ctx context.Context, q argo.RegionQuery) (argo.PointSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ERDDAPRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ERDDAPRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("tabledap request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.ERDDAPRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ERDDAP error: status %d: %s", resp.StatusCode, body)
	}

	var tr tableResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		c.metrics.ERDDAPRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	c.metrics.ERDDAPRequests.WithLabelValues("success").Inc()

	points, err := tr.Table.points()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched tabledap rows", "dataset", c.dataset, "rows", len(points))
	return points, nil
}

// queryURL builds the tabledap query: projected columns, one percent-encoded
// constraint per bound, and a deterministic sort so levels arrive shallowest
// first within each cast.
func (c *Client) queryURL(q argo.RegionQuery) string {
	constraints := []string{
		fmt.Sprintf("longitude>=%g", q.Box.MinLon),
		fmt.Sprintf("longitude<=%g", q.Box.MaxLon),
		fmt.Sprintf("latitude>=%g", q.Box.MinLat),
		fmt.Sprintf("latitude<=%g", q.Box.MaxLat),
		fmt.Sprintf("pres>=%g", q.MinPressure),
		fmt.Sprintf("pres<=%g", q.MaxPressure),
		"time>=" + q.Start.UTC().Format(time.RFC3339),
		"time<=" + q.End.UTC().Format(time.RFC3339),
		`orderBy("time,pres")`,
	}

	parts := make([]string, 0, len(constraints)+1)
	parts = append(parts, columns)
	for _, con := range constraints {
		parts = append(parts, url.QueryEscape(con))
	}

	return fmt.Sprintf("%s/tabledap/%s.json?%s", c.baseURL, c.dataset, strings.Join(parts, "&"))
}

// castKey identifies one cast: a platform's numbered surfacing.
type castKey struct {
	platform string
	cycle    int
}

// points converts the row-oriented table into typed observations. Cells are
// addressed by column name so the projection order in the response does not
// matter. Level indices restart at zero for each cast, in row order.
func (t table) points() (argo.PointSet, error) {
	idx := make(map[string]int, len(t.ColumnNames))
	for i, name := range t.ColumnNames {
		idx[name] = i
	}
	for _, name := range strings.Split(columns, ",") {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("response table is missing column %q", name)
		}
	}

	points := make(argo.PointSet, 0, len(t.Rows))
	levels := make(map[castKey]int)
	for i, row := range t.Rows {
		if len(row) != len(t.ColumnNames) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.ColumnNames))
		}

		platform := stringCell(row[idx["platform_number"]])
		cycle := intCell(row[idx["cycle_number"]])
		ts, err := timeCell(row[idx["time"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		key := castKey{platform: platform, cycle: cycle}
		level := levels[key]
		levels[key] = level + 1

		points = append(points, argo.Point{
			Platform:    platform,
			Cycle:       cycle,
			Level:       level,
			Lat:         floatCell(row[idx["latitude"]]),
			Lon:         floatCell(row[idx["longitude"]]),
			Time:        ts,
			Pressure:    floatCell(row[idx["pres"]]),
			Temperature: floatCell(row[idx["temp"]]),
			Salinity:    floatCell(row[idx["psal"]]),
		})
	}

	return points, nil
}

// floatCell returns a numeric cell, with NaN for JSON null or anything
// non-numeric.
func floatCell(v any) float64 {
	f, ok := v.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}

func stringCell(v any) string {
	s, _ := v.(string)
	return s
}

func intCell(v any) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

// timeCell parses ERDDAP's ISO 8601 time strings.
func timeCell(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("time cell %v is not a string", v)
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time cell: %w", err)
	}
	return ts.UTC(), nil
}

// ERDDAP tabledap response types.

type tableResponse struct {
	Table table `json:"table"`
}

type table struct {
	ColumnNames []string `json:"columnNames"`
	Rows        [][]any  `json:"rows"`
}
