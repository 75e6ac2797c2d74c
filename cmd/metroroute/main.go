// Command metroroute answers shortest-path queries over a metro network.
//
//	metroroute S1 S21
//	metroroute --strategy linear --dot route.dot -s S1 -t S21
//	metroroute --network lines.yaml --all-pairs
//
// Exit status is 0 when a path is found, 1 when the stations are not
// connected, and 2 on any other failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/internal/config"
	"github.com/katalvlaran/metro/internal/logging"
	"github.com/katalvlaran/metro/metro"
	"github.com/katalvlaran/metro/report"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, config.WithOutput(stderr))
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitFound
		}
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitError
	}

	logger := logging.New(cfg.Log, stderr, "metroroute").With().
		Str("query_id", uuid.NewString()).
		Logger()

	net, err := loadNetwork(cfg.Network)
	if err != nil {
		logger.Error().Err(err).Str("network", cfg.Network).Msg("load network")
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitError
	}
	g, err := net.Graph()
	if err != nil {
		logger.Error().Err(err).Msg("build graph")
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitError
	}
	stats := g.Stats()
	logger.Info().
		Str("network", net.Name).
		Int("stations", stats.VertexCount).
		Int("segments", stats.EdgeCount).
		Int("isolated", stats.Isolated).
		Float64("total_length", stats.TotalWeight).
		Msg("network ready")
	if comps, err := bfs.Components(ctx, g); err == nil && len(comps) > 1 {
		logger.Warn().Int("components", len(comps)).Msg("network is disconnected")
	}

	strategy, err := dijkstra.ParseStrategy(cfg.Strategy)
	if err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitError
	}
	opts := []dijkstra.Option{
		dijkstra.WithStrategy(strategy),
		dijkstra.WithLogger(logger.With().Str(logging.FieldComponent, "dijkstra").Logger()),
	}
	f := report.NewFormatter(net.DistanceUnit())

	if cfg.AllPairs {
		m, err := dijkstra.AllPairs(ctx, g, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "metroroute: %v\n", err)
			return exitError
		}
		fmt.Fprint(stdout, f.Table(m))
		return exitFound
	}

	res, err := dijkstra.ShortestPath(ctx, g, cfg.Source, cfg.Target, opts...)
	if err != nil {
		logger.Warn().Err(err).Str("source", cfg.Source).Str("target", cfg.Target).Msg("query failed")
		fmt.Fprintln(stderr, f.Error(err))
		return exitError
	}
	logQuery(logger, res)
	fmt.Fprintln(stdout, f.Text(res))

	if cfg.DOT != "" {
		if err := writeDOT(cfg.DOT, net, res); err != nil {
			logger.Error().Err(err).Str("path", cfg.DOT).Msg("write dot")
			fmt.Fprintf(stderr, "metroroute: %v\n", err)
			return exitError
		}
	}

	if !res.Found {
		return exitNotFound
	}

	return exitFound
}

func loadNetwork(path string) (*metro.Network, error) {
	if path == "" {
		return metro.Sample(), nil
	}

	return metro.Load(path)
}

func writeDOT(path string, net *metro.Network, res *dijkstra.Result) (err error) {
	g, err := net.Graph()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.DOT(f, g, net, res)
}

func logQuery(logger zerolog.Logger, res *dijkstra.Result) {
	ev := logger.Info().
		Str("source", res.Source).
		Str("target", res.Target).
		Bool("found", res.Found)
	if res.Found {
		ev = ev.Float64("distance", res.Distance).Int("hops", res.Hops())
	}
	ev.Msg("query done")
}
