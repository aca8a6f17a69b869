package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghartke/fchoosability/fgraph"
	"github.com/sghartke/fchoosability/search"
)

var errParallelFlags = errors.New("-r and -m must be used together, and -s requires both")

type flags struct {
	residue     int
	modulus     int
	splitLevel  int
	verbose     bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	fl := &flags{residue: -1, modulus: -1, splitLevel: -1}

	cmd := &cobra.Command{
		Use:   "fchoosability",
		Short: "Decide f-choosability of graphs read from stdin in fgraph6 format",
		Long: "fchoosability reads fgraph6-encoded graphs from stdin, one per line, and\n" +
			"for each decides whether it is f-choosable by exhaustively searching for\n" +
			"a bad list assignment. Lines starting with '>' are comments; lines of\n" +
			"length <= 3 are skipped as probable end-of-file artifacts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), fl, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&fl.residue, "residue", "r", -1, "residue for parallel search sharding (requires --modulus)")
	cmd.Flags().IntVarP(&fl.modulus, "modulus", "m", -1, "modulus for parallel search sharding (requires --residue)")
	cmd.Flags().IntVarP(&fl.splitLevel, "splitlevel", "s", -1, "search depth at which sharding is applied (requires --residue/--modulus)")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "emit debug-level search progress logging")
	cmd.Flags().StringVar(&fl.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func validateFlags(fl *flags) error {
	residueSet := fl.residue != -1
	modulusSet := fl.modulus != -1
	if residueSet != modulusSet {
		return errParallelFlags
	}
	if fl.splitLevel != -1 && !modulusSet {
		return errParallelFlags
	}
	return nil
}

func run(ctx context.Context, fl *flags, in io.Reader, out io.Writer) error {
	if err := validateFlags(fl); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if fl.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	var metrics *search.Metrics
	if fl.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = search.NewMetrics(reg, "fchoosability")
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(fl.metricsAddr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		logger.Info().Str("addr", fl.metricsAddr).Msg("serving prometheus metrics")
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lastChoosable bool
	sawAny := false

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) <= 3 {
			continue
		}
		if line[0] == '>' {
			continue
		}

		g, err := fgraph.Decode(line)
		if err != nil {
			if errors.Is(err, fgraph.ErrInvalidF) {
				// A non-positive f[v] makes v impossible to color from any
				// list, so this graph can never be f-choosable; report it
				// rather than silently dropping the record.
				logger.Error().Err(err).Str("line", line).Msg("invalid f-vector")
				sawAny = true
				lastChoosable = false
				fmt.Fprintf(out, "This graph is NOT f-choosable! (invalid f-vector: %v)\n", err)
				continue
			}
			logger.Error().Err(err).Str("line", line).Msg("failed to decode fgraph6 line")
			continue
		}

		if pruned, ok := g.Prune(); ok {
			logger.Debug().Int("n", g.N).Int("pruned_n", pruned.N).Msg("pruned forced-color vertices")
			g = pruned
		}

		splitLevel := fl.splitLevel
		var opts []search.Option
		if fl.modulus == -1 {
			logger.Info().Int("n", g.N).Msg("not parallelizing")
		} else {
			if splitLevel == -1 {
				splitLevel = 3
			}
			opts = append(opts, search.WithSharding(fl.residue, fl.modulus, splitLevel))
			logger.Info().Int("n", g.N).Int("splitlevel", splitLevel).Msg("parallelizing")
		}
		opts = append(opts, search.WithLogger(logger), search.WithMetrics(metrics))

		d, err := search.NewDriver(g, opts...)
		if err != nil {
			logger.Error().Err(err).Msg("failed to build search driver")
			continue
		}

		start := time.Now()
		res, err := d.Run(ctx)
		if err != nil {
			return fmt.Errorf("fchoosability: search cancelled: %w", err)
		}
		elapsed := time.Since(start)

		sawAny = true
		lastChoosable = res.Choosable
		if res.Choosable {
			fmt.Fprintf(out, "This graph is f-choosable! (n=%d, nodes visited=%d, %s)\n", g.N, res.Count, elapsed)
		} else {
			fmt.Fprintf(out, "This graph is NOT f-choosable! (n=%d, nodes visited=%d, %s)\n", g.N, res.Count, elapsed)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("fchoosability: reading input: %w", err)
	}

	if sawAny && !lastChoosable {
		return errNotChoosable
	}
	return nil
}

var errNotChoosable = errors.New("last graph examined was not f-choosable")
