package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/metrics"
	"github.com/katalvlaran/degrees/search"
)

func TestObserve_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	g, err := builder.BuildCast(nil, nil, builder.Chain(3), builder.Loner())
	require.NoError(t, err)

	res, err := search.Find(g, "p0", "p2")
	rec.Observe(res, err, 2*time.Millisecond)
	res, err = search.Find(g, "p0", "p3")
	rec.Observe(res, err, time.Millisecond)
	res, err = search.Find(g, "", "p3")
	rec.Observe(res, err, time.Microsecond)
	rec.Observe(&search.Result{}, context.Canceled, time.Second)

	counter := func(outcome string) float64 {
		c, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range c {
			if mf.GetName() != "degrees_searches_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				if m.GetLabel()[0].GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
		return 0
	}
	assert.Equal(t, 1.0, counter(metrics.OutcomeConnected))
	assert.Equal(t, 1.0, counter(metrics.OutcomeNotConnected))
	assert.Equal(t, 1.0, counter(metrics.OutcomeError))
	assert.Equal(t, 1.0, counter(metrics.OutcomeCancelled))

	n, err := testutil.GatherAndCount(reg, "degrees_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = testutil.GatherAndCount(reg, "degrees_search_degrees")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestObserve_Histograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.Observe(&search.Result{Connected: true, Path: make(search.Path, 2), Explored: 7}, nil, time.Millisecond)

	want := `
# HELP degrees_search_degrees Degrees of separation of connected searches
# TYPE degrees_search_degrees histogram
degrees_search_degrees_bucket{le="0"} 0
degrees_search_degrees_bucket{le="1"} 0
degrees_search_degrees_bucket{le="2"} 1
degrees_search_degrees_bucket{le="3"} 1
degrees_search_degrees_bucket{le="4"} 1
degrees_search_degrees_bucket{le="5"} 1
degrees_search_degrees_bucket{le="6"} 1
degrees_search_degrees_bucket{le="8"} 1
degrees_search_degrees_bucket{le="10"} 1
degrees_search_degrees_bucket{le="+Inf"} 1
degrees_search_degrees_sum 2
degrees_search_degrees_count 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "degrees_search_degrees"))
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = metrics.NewRecorder(reg)
	assert.Panics(t, func() { _ = metrics.NewRecorder(reg) })
	assert.NotPanics(t, func() { _ = metrics.NewRecorder(nil) })
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	rec.Observe(nil, errors.New("boom"), time.Millisecond)

	path := filepath.Join(t.TempDir(), "degrees.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `degrees_searches_total{outcome="error"} 1`)
	assert.Contains(t, string(data), "degrees_search_duration_seconds_count 1")
}
