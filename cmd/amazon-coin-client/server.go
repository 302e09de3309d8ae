package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/spf13/cobra"

	amazoncoinclient "github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/metrics"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/verifier"
)

// reportServer exposes the prometheus registry and the latest verification
// report over HTTP.
type reportServer struct {
	mux *http.ServeMux

	mu     sync.RWMutex
	report *verifier.Report
}

func newReportServer(gatherer prometheus.Gatherer) *reportServer {
	s := &reportServer{mux: http.NewServeMux()}
	s.mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/report", s.handleReport)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

func (s *reportServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *reportServer) setReport(r verifier.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &r
}

func (s *reportServer) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()
	if report == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no verification has completed yet"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *reportServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	status := "starting"
	if report != nil {
		status = report.Summary.OverallStatus
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newServeMetricsCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Verify every network on an interval and serve the results to prometheus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.App.MetricsAddr
			}
			if interval <= 0 {
				interval = cfg.VerifyInterval()
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			rec, err := metrics.NewPrometheusRecorder(reg)
			if err != nil {
				return err
			}

			app, err := amazoncoinclient.NewApp(ctx, cfg, amazoncoinclient.Options{
				Metrics: rec,
				History: history.NewMemoryStore(),
			})
			if err != nil {
				return err
			}
			defer closeApp(app)

			srv := newReportServer(reg)
			server := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 5 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()
			log.Info("serving metrics", "addr", addr, "interval", interval.String())

			runVerification(ctx, app.Verifier, srv)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

		loop:
			for {
				select {
				case <-ctx.Done():
					log.Info("shutdown signal received")
					break loop
				case err, ok := <-serveErr:
					if ok {
						return errors.Wrap(err, "metrics server failed")
					}
					break loop
				case <-ticker.C:
					runVerification(ctx, app.Verifier, srv)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("metrics server shutdown failed", "error", err.Error())
				return err
			}
			log.Info("metrics server gracefully stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: app.metricsAddr)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "verification interval (default: app.metricsIntervalSeconds)")
	return cmd
}

func runVerification(ctx context.Context, v *verifier.Verifier, srv *reportServer) {
	report := v.VerifyAll(ctx)
	srv.setReport(report)
}
