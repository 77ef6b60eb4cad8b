package main

import (
	"context"
	"os"
	"time"

	"github.com/bjaus/lru"
	"github.com/bjaus/lru/internal/config"
	"github.com/bjaus/lru/internal/logging"
	"github.com/bjaus/lru/metrics"
	"github.com/bjaus/lru/search"
	"github.com/phuslu/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// memo is the cache surface the commands need. Both lru.Cache and
// lru.SyncCache provide it.
type memo interface {
	search.Cache
	metrics.Source
	Keys() []string
	Clear()
}

// app wires one searcher to its cache for the lifetime of a command.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	cache    memo
	searcher *search.Searcher
	metrics  *metrics.Server
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagCapacity) {
		cfg.Capacity = opts.capacity
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed(flagMetricsAddr) {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if flags.Changed(flagData) {
		cfg.DataFile = opts.dataFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func loadItems(path string) ([]search.Item, error) {
	if path == "" {
		return search.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open data file %s", path)
	}
	defer f.Close()

	items, err := search.LoadItems(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load data file %s", path)
	}
	return items, nil
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	items, err := loadItems(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	cacheOpts := []lru.Option[string, []search.Result]{
		lru.WithLogger[string, []search.Result](logger),
	}

	// the scraper reads the cache from its own goroutine
	if cfg.MetricsAddr != "" {
		c, err := lru.NewSync[string, []search.Result](cfg.Capacity, cacheOpts...)
		if err != nil {
			return nil, err
		}
		a.cache = c

		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector("lrusearch_cache", "search", c))
		a.metrics = metrics.NewServer(cfg.MetricsAddr, reg)
		a.metrics.StartAsync(func(err error) {
			logger.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server failed")
		})
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	} else {
		c, err := lru.New[string, []search.Result](cfg.Capacity, cacheOpts...)
		if err != nil {
			return nil, err
		}
		a.cache = c
	}

	a.searcher = search.New(items, a.cache, search.WithLogger(logger))
	logger.Debug().Int("capacity", cfg.Capacity).Int("items", len(items)).Msg("search cache ready")
	return a, nil
}

func (a *app) close() {
	if a.metrics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metrics.Shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("metrics server shutdown")
	}
}
