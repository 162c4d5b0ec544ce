package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynet/dijkstra"
	"github.com/katalvlaran/citynet/internal/metrics"
)

func TestObserveQuery(t *testing.T) {
	rec := metrics.New("citynet")

	rec.ObserveQuery(&dijkstra.Result{Found: true, TotalDistance: 120, Visited: 4}, nil)
	rec.ObserveQuery(&dijkstra.Result{Found: true, TotalDistance: 80, Visited: 2}, nil)
	rec.ObserveQuery(&dijkstra.Result{Visited: 1}, nil)
	rec.ObserveQuery(nil, errors.New("start missing"))

	// 3 query series, 3 histograms, 2 gauges and the failure counter
	n, err := testutil.GatherAndCount(rec.Registry())
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	mfs, err := rec.Registry().Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "citynet_route_queries_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		metrics.OutcomeFound:       2,
		metrics.OutcomeUnreachable: 1,
		metrics.OutcomeInvalid:     1,
	}, counts)
}

func TestExport(t *testing.T) {
	rec := metrics.New("citynet")
	rec.SetNetwork(5, 7)
	rec.AddLoadFailures(2)

	path := filepath.Join(t.TempDir(), "citynet.prom")
	require.NoError(t, rec.Export(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "citynet_network_cities 5")
	assert.Contains(t, text, "citynet_network_roads 7")
	assert.Contains(t, text, "citynet_network_load_failures_total 2")

	require.ErrorIs(t, rec.Export(""), metrics.ErrNoFile)
}
