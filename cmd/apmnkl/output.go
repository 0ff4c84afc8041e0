package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/anytime"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/archive"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/metrics"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/plot"
)

// emitResults writes the anytime CSV to opts.output (or stdout), and, when
// requested, renders the anytime chart and serves final metrics.
func emitResults(opts *globalOptions, driverName string, arc *archive.Archive, log *anytime.Log) error {
	w, closeFn, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := log.WriteCSV(w); err != nil {
		return fmt.Errorf("apmnkl: failed to write anytime CSV: %w", err)
	}

	if opts.plotPath != "" {
		if err := plot.Anytime(log, driverName, opts.plotPath); err != nil {
			return fmt.Errorf("apmnkl: failed to render anytime chart: %w", err)
		}
	}

	if opts.plotFrontPath != "" {
		if err := plot.ParetoFront(arc.Members(), driverName, opts.plotFrontPath); err != nil {
			return fmt.Errorf("apmnkl: failed to render Pareto front: %w", err)
		}
	}

	if opts.metricsAddr != "" {
		last := 0.0
		if n := len(log.Rows); n > 0 {
			last = log.Rows[n-1].Hypervolume
		}
		srv := metrics.New()
		srv.Observe(opts.maxeval, arc.Len(), last)
		klog.Background().Info("serving final run metrics", "addr", opts.metricsAddr)
		if err := srv.ListenAndServe(context.Background(), opts.metricsAddr); err != nil {
			return fmt.Errorf("apmnkl: metrics server: %w", err)
		}
	}

	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("apmnkl: failed to open output file %q: %w", path, err)
	}
	return f, f.Close, nil
}
