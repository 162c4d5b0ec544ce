package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/internal/app"
	"github.com/katalvlaran/citynet/internal/config"
	"github.com/katalvlaran/citynet/loader"
)

const (
	testPaths = "York\tLeeds\t26\n" +
		"Leeds\tHull\t60\n" +
		"York\tHull\t100\n" +
		"Manchester\tLiverpool\t35\n" +
		"Leeds\tBradford\t-14\n"

	testPairs = "York\tHull\n" +
		"Hull\tYork\n" +
		"York\tLiverpool\n" +
		"Leeds\tLeeds\n" +
		"Winchester\tYork\n"

	testRunID = "test-run"
)

type RouteSuite struct {
	suite.Suite
	dir    string
	cfg    config.Config
	stdout bytes.Buffer
	logs   bytes.Buffer
}

func (s *RouteSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.cfg = config.Default()
	s.cfg.Paths = s.write("paths.txt", testPaths)
	s.cfg.Pairs = s.write("pairs.txt", testPairs)
	s.cfg.Output = filepath.Join(s.dir, "results.txt")
	s.stdout.Reset()
	s.logs.Reset()
}

func (s *RouteSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))

	return path
}

func (s *RouteSuite) newApp() *app.App {
	s.Require().NoError(s.cfg.Validate())
	logger := app.NewLogger("debug", "json", &s.logs)

	return app.New(s.cfg, &s.stdout, logger, app.WithRunID(testRunID))
}

func (s *RouteSuite) results() string {
	raw, err := os.ReadFile(s.cfg.Output)
	s.Require().NoError(err)

	return string(raw)
}

func (s *RouteSuite) TestRouteBatch() {
	require := require.New(s.T())
	sum, err := s.newApp().Route(context.Background())
	require.NoError(err)

	s.Equal(app.Summary{
		RunID:        testRunID,
		Cities:       6,
		Roads:        4,
		LoadFailures: 1,
		Queries:      5,
		Found:        3,
		Unreachable:  1,
		Invalid:      1,
		SearchTime:   sum.SearchTime,
	}, sum)

	out := s.results()
	s.True(strings.HasPrefix(out, "# citynet run test-run\n"))
	s.Contains(out, "Shortest path between 'York' and 'Hull'.\nPATH RESULTS:\n\tPath: [ York -(26km)-> Leeds -(60km)-> Hull ]\n\tThe distance of this path is 86km.\n")
	s.Contains(out, "\tPath: [ Hull -(60km)-> Leeds -(26km)-> York ]\n")
	s.Contains(out, "Shortest path between 'York' and 'Liverpool'.\nPATH RESULTS:\n\tPath not found! - Cities are unreachable.\nALGORITHM COMPLETED\n")
	s.Contains(out, "\tPath: [ Leeds ]\n\tThe distance of this path is 0km.\n")
	s.Contains(out, "\n(5 Iterations - Time Duration ")
	s.True(strings.HasSuffix(out, "*** DIJKSTRA'S ALGORITHM - COMPLETE ***\n"))
	s.NotContains(out, "Winchester", "invalid queries stay out of the results file")

	term := s.stdout.String()
	s.Contains(term, "\tNetwork: [ York, Leeds, Hull, Manchester, Liverpool, Bradford ]\n")
	s.Contains(term, "Failure: dijkstra: vertex not found in graph: start: \"Winchester\"")
	s.NotContains(term, "\x1b[", "plain output off a terminal")

	logs := s.logs.String()
	s.Contains(logs, `"msg":"Path record rejected."`)
	s.Contains(logs, `"line":5`)
	s.Contains(logs, `"run_id":"test-run"`)
	s.Contains(logs, `"msg":"Route batch complete."`)
}

func (s *RouteSuite) TestSelfCheck() {
	s.cfg.SelfCheck = true
	sum, err := s.newApp().Route(context.Background())
	s.Require().NoError(err)
	s.Equal(6, sum.Cities, "the loaded network is not modified")

	term := s.stdout.String()
	s.Contains(term, "*** TESTING ERROR FLAGS - START ***")
	s.Contains(term, "'York' Connections: \n\t[ Leeds (26km), Hull (100km) ]\n")
	s.Contains(term, "'Coventry' Connections: \n\tConnection List empty!\n")
	s.Contains(term, "Failure: core: vertex already present")
	s.Contains(term, "*** TESTING ERROR FLAGS - COMPLETE ***")

	out := s.results()
	s.Contains(out, "Testing 'dijkstra' function error paths:\n")
	s.Contains(out, "Shortest path between 'York' and 'Coventry'.\nPATH RESULTS:\n\tPath not found!")
	s.Contains(s.logs.String(), `"msg":"Self-check complete."`)
}

func (s *RouteSuite) TestSelfCheckAvoidsExistingNames() {
	s.cfg.SelfCheck = true
	s.cfg.Paths = s.write("paths.txt", testPaths+"Coventry\tWinchester\t12\nExeter\tYork\t300\n")
	_, err := s.newApp().Route(context.Background())
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "'Coventry2' Connections: \n\tConnection List empty!\n")
}

func (s *RouteSuite) TestMetricsExport() {
	s.cfg.Metrics.File = filepath.Join(s.dir, "citynet.prom")
	_, err := s.newApp().Route(context.Background())
	s.Require().NoError(err)

	raw, err := os.ReadFile(s.cfg.Metrics.File)
	s.Require().NoError(err)
	text := string(raw)
	s.Contains(text, `citynet_route_queries_total{outcome="found"} 3`)
	s.Contains(text, `citynet_route_queries_total{outcome="invalid"} 1`)
	s.Contains(text, "citynet_network_cities 6")
	s.Contains(text, "citynet_network_load_failures_total 1")
}

func (s *RouteSuite) TestSearchLimits() {
	s.cfg.Search.InfEdgeThreshold = 50
	sum, err := s.newApp().Route(context.Background())
	s.Require().NoError(err)
	s.Equal(1, sum.Found, "only Leeds-Leeds survives without the long roads")
	s.Equal(3, sum.Unreachable)
}

func (s *RouteSuite) TestInputErrors() {
	s.cfg.Pairs = s.write("empty.txt", "# nothing here\n")
	_, err := s.newApp().Route(context.Background())
	s.ErrorIs(err, app.ErrNoData)

	s.cfg.Pairs = s.write("bad.txt", "York\n")
	_, err = s.newApp().Route(context.Background())
	s.ErrorIs(err, loader.ErrFieldCount)

	s.cfg.Paths = filepath.Join(s.dir, "missing.txt")
	_, err = s.newApp().Route(context.Background())
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *RouteSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := s.newApp().Route(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Zero(sum.Queries)
}

func (s *RouteSuite) TestConnections() {
	err := s.newApp().Connections([]string{"York", "Nowhere", "Bradford"})
	s.ErrorIs(err, core.ErrVertexNotFound)

	term := s.stdout.String()
	s.Contains(term, "'York' Connections: \n\t[ Leeds (26km), Hull (100km) ]\n")
	s.Contains(term, "Failure: report: core: vertex not found: \"Nowhere\"")
	s.Contains(term, "'Bradford' Connections: \n\tConnection List empty!\n")
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	app.NewLogger("warn", "text", &buf).Info("hidden")
	app.NewLogger("warn", "text", &buf).Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	app.NewLogger("bogus", "json", &buf).Info("fallback")
	assert.Contains(t, buf.String(), `"msg":"fallback"`)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, app.IsTerminal(&bytes.Buffer{}))
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, app.IsTerminal(f))
}

func TestGenerate(t *testing.T) {
	opts := app.GenerateOptions{Kind: app.KindPath, N: 4, Seed: 1, MinWeight: 5, MaxWeight: 5, Pairs: 3}
	var paths, pairs bytes.Buffer
	g, err := app.Generate(&paths, &pairs, opts)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, "A\tB\t5\nB\tC\t5\nC\tD\t5\n", paths.String())

	recs, err := loader.ParsePairs(&pairs)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	// Same options, same files.
	var again, againPairs bytes.Buffer
	_, err = app.Generate(&again, &againPairs, opts)
	require.NoError(t, err)
	assert.Equal(t, paths.String(), again.String())

	recs2, err := loader.ParsePairs(&againPairs)
	require.NoError(t, err)
	assert.Equal(t, recs, recs2)
}

func TestGenerateRoundTrip(t *testing.T) {
	for _, kind := range app.Kinds() {
		t.Run(kind, func(t *testing.T) {
			var paths bytes.Buffer
			g, err := app.Generate(&paths, nil, app.GenerateOptions{Kind: kind, N: 6, P: 1, Seed: 3, MinWeight: 1, MaxWeight: 9})
			require.NoError(t, err)

			recs, err := loader.ParsePaths(&paths)
			require.NoError(t, err)
			back := core.NewGraph()
			rep, err := loader.Apply(back, recs)
			require.NoError(t, err)
			require.False(t, rep.Failed())
			assert.Equal(t, g.EdgeCount(), back.EdgeCount())
			assert.ElementsMatch(t, g.Vertices(), back.Vertices())
		})
	}
}

func TestGenerateRejects(t *testing.T) {
	_, err := app.Generate(io.Discard, nil, app.GenerateOptions{Kind: "torus", N: 4, MinWeight: 1, MaxWeight: 2})
	require.ErrorIs(t, err, app.ErrUnknownKind)

	_, err = app.Generate(io.Discard, nil, app.GenerateOptions{Kind: app.KindPath, N: 4, MinWeight: 0, MaxWeight: 2})
	require.ErrorIs(t, err, app.ErrBadWeightRange)

	_, err = app.Generate(io.Discard, nil, app.GenerateOptions{Kind: app.KindCycle, N: 2, MinWeight: 1, MaxWeight: 2})
	require.Error(t, err)

	assert.Equal(t, []string{"complete", "cycle", "grid", "path", "random", "star", "wheel"}, app.Kinds())
}
