// Package metrics exposes a Prometheus scrape endpoint reporting the
// evaluation count, archive size, and hypervolume of a running search.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server owns a dedicated Prometheus registry for one search run.
type Server struct {
	registry    *prometheus.Registry
	evaluations prometheus.Gauge
	archiveSize prometheus.Gauge
	hypervolume prometheus.Gauge
	srv         *http.Server
}

// New constructs a Server with its gauges registered, unstarted.
func New() *Server {
	registry := prometheus.NewRegistry()

	evaluations := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "apmnkl_evaluations_total",
		Help: "Number of objective function evaluations spent so far.",
	})
	archiveSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "apmnkl_archive_size",
		Help: "Current number of nondominated solutions in the archive.",
	})
	hypervolume := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "apmnkl_hypervolume",
		Help: "Current hypervolume of the archive with respect to the run's reference point.",
	})
	registry.MustRegister(evaluations, archiveSize, hypervolume)

	return &Server{
		registry:    registry,
		evaluations: evaluations,
		archiveSize: archiveSize,
		hypervolume: hypervolume,
	}
}

// Observe updates the three gauges to reflect the current run state. Safe
// to call from the driver's single goroutine at any evaluation boundary.
func (s *Server) Observe(evaluations, archiveSize int, hv float64) {
	s.evaluations.Set(float64(evaluations))
	s.archiveSize.Set(float64(archiveSize))
	s.hypervolume.Set(hv)
}

// ListenAndServe starts the scrape endpoint on addr and blocks until ctx
// is canceled, at which point it shuts the server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.srv = &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.srv.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
