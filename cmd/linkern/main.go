// Command linkern improves tours of Euclidean point sets with Lin–Kernighan.
//
// Usage:
//
//	linkern [-config cfg.yaml] [-out path] [flags] points.txt
//
// The input holds one or more instances (see package tspio). Each is seeded
// with the configured provider, improved, and written to the output path, or
// to <output>.N (N counted from 1) when the input holds several instances.
// The final length of every instance is printed to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/linkern/bound"
	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/lk"
	"github.com/katalvlaran/linkern/metrics"
	"github.com/katalvlaran/linkern/seed"
	"github.com/katalvlaran/linkern/tour"
	"github.com/katalvlaran/linkern/tspio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// parseArgs loads the config named by -config and applies the flags that
// were set explicitly on top of it.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("linkern", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath    = fs.String("config", "", "YAML config file")
		out        = fs.String("out", "", "output path (default <input>.tour)")
		provider   = fs.String("seed", "", "initial tour: multistart, nearest, random, identity")
		randomSeed = fs.Int64("random-seed", 0, "seed for the random provider")
		workers    = fs.Int("workers", 0, "concurrent searches per window")
		candidates = fs.Int("candidates", 0, "y-edge candidates per city (0 = all)")
		timeLimit  = fs.Duration("time-limit", 0, "wall-clock budget per instance")
		boundIters = fs.Int("bound-iterations", 0, "report a 1-tree lower bound computed with this many steps")
		metricsOut = fs.String("metrics", "", "write Prometheus metrics to this textfile")
		logLevel   = fs.String("log-level", "", "debug, info, warn, error")
		logFormat  = fs.String("log-format", "", "text or json")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *out
		case "seed":
			cfg.Seed.Provider = *provider
		case "random-seed":
			cfg.Seed.RandomSeed = *randomSeed
		case "workers":
			cfg.LK.Workers = *workers
		case "candidates":
			cfg.LK.Candidates = *candidates
		case "time-limit":
			cfg.LK.TimeLimit = *timeLimit
		case "bound-iterations":
			cfg.Bound.Iterations = *boundIters
		case "metrics":
			cfg.Metrics.Textfile = *metricsOut
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if fs.NArg() > 1 {
		return cfg, fmt.Errorf("%w: expected one input file, got %d", errConfig, fs.NArg())
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}

	return cfg, cfg.validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log = log.With("run_id", uuid.New().String())

	insts, err := tspio.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.Info("instances loaded", "input", cfg.Input, "count", len(insts))

	if cfg.Metrics.Textfile != "" {
		metrics.RegisterDefault()
	}

	var out = cfg.output()
	for i, inst := range insts {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("instance %d: %w", i+1, err)
		}
		path := out
		if len(insts) > 1 {
			path = out + "." + strconv.Itoa(i+1)
		}
		length, err := solve(ctx, cfg, log.With("instance", i+1), inst, path)
		if err != nil {
			return fmt.Errorf("instance %d: %w", i+1, err)
		}
		fmt.Fprintln(stdout, length)
	}

	if cfg.Metrics.Textfile != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics.Textfile, metrics.Registry); err != nil {
			return fmt.Errorf("linkern: metrics: %w", err)
		}
	}

	return nil
}

// solve seeds, improves and writes one instance, returning its final length.
func solve(ctx context.Context, cfg Config, log *slog.Logger, inst *instance.Instance, path string) (int64, error) {
	start := time.Now()
	initial, err := initialTour(ctx, cfg, log, inst)
	if err != nil {
		return 0, err
	}
	seeded := time.Since(start)

	opts := append(cfg.lkOptions(), lk.WithLogger(log), lk.WithContext(ctx))
	if cfg.Metrics.Textfile != "" {
		opts = append(opts, lk.WithRecorder(metrics.Default.For(path)))
	}
	res, err := lk.Improve(inst, initial, opts...)
	// An interrupted run still holds a valid tour; it is written before the
	// cancellation is reported.
	var stopped error
	switch {
	case errors.Is(err, lk.ErrTimeLimit):
		log.Warn("time limit reached, keeping best tour", "limit", cfg.LK.TimeLimit)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("interrupted, keeping best tour", "error", err)
		stopped = err
	case err != nil:
		return 0, err
	}

	order, err := canonicalTour(res.Tour)
	if err != nil {
		return 0, err
	}
	if err = tspio.WriteFile(path, inst, order, res.Length); err != nil {
		return 0, err
	}
	if stopped != nil {
		return res.Length, stopped
	}
	if cfg.Bound.Iterations > 0 {
		bc := bound.DefaultConfig()
		bc.Iterations = cfg.Bound.Iterations
		bc.UpperBound = res.Length
		lb, err := bound.OneTree(inst, bc)
		if err != nil {
			return 0, err
		}
		log = log.With("lower_bound", lb.Bound, "gap", bound.Gap(res.Length, lb.Bound))
	}
	log.Info("instance solved",
		"n", inst.N(),
		"initial", res.InitialLength,
		"length", res.Length,
		"passes", res.Passes,
		"exchanges", res.Exchanges,
		"rejected", res.Rejected,
		"converged", res.Converged,
		"seed_time", seeded,
		"total_time", time.Since(start),
		"output", path,
	)

	return res.Length, nil
}

// canonicalTour rotates order to begin at city 0 and orients it so that the
// second city is the smaller of city 0's two neighbors.
func canonicalTour(order []int) ([]int, error) {
	out, err := tour.RotateToStart(order, 0)
	if err != nil {
		return nil, err
	}
	tour.CanonicalizeOrientation(out)

	return out, nil
}

func initialTour(ctx context.Context, cfg Config, log *slog.Logger, inst *instance.Instance) ([]int, error) {
	switch cfg.Seed.Provider {
	case providerIdentity:
		return seed.Identity(inst.N()), nil
	case providerRandom:
		return seed.Random(inst.N(), cfg.Seed.RandomSeed), nil
	case providerNearest:
		p, err := seed.NearestNeighbor(inst, cfg.Seed.Start)
		return p.Order, err
	default:
		p, err := seed.MultiStart(ctx, inst,
			seed.WithStarts(cfg.Seed.Starts),
			seed.WithWorkers(cfg.Seed.Workers),
			seed.WithLogger(log),
		)
		return p.Order, err
	}
}
