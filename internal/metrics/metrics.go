// Package metrics exports frame and ray counters to Prometheus.
//
// Exported series:
//   - raycaster_frames_total (counter)
//   - raycaster_sweep_duration_seconds (histogram)
//   - raycaster_rays_total{result} (counter; vertical, horizontal or miss)
//   - raycaster_player_cell{axis} (gauge)
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"raycaster/internal/logging"
	"raycaster/internal/raycast"
)

const namespace = "raycaster"

// FrameMetrics groups the collectors updated once per rendered frame.
type FrameMetrics struct {
	frames     prometheus.Counter
	sweep      prometheus.Histogram
	rays       *prometheus.CounterVec
	playerCell *prometheus.GaugeVec
}

// NewFrameMetrics creates the collectors and registers them with reg.
func NewFrameMetrics(reg prometheus.Registerer) *FrameMetrics {
	fm := &FrameMetrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames swept.",
		}),
		sweep: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Time spent casting all columns of one frame.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		rays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rays_total",
			Help:      "Rays cast, by the grid-line family that stopped them.",
		}, []string{"result"}),
		playerCell: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_cell",
			Help:      "Grid cell currently occupied by the player.",
		}, []string{"axis"}),
	}
	reg.MustRegister(fm.frames, fm.sweep, fm.rays, fm.playerCell)
	return fm
}

// ObserveSweep records one frame's sweep.
func (fm *FrameMetrics) ObserveSweep(elapsed time.Duration, hits []raycast.Hit) {
	if fm == nil {
		return
	}
	fm.frames.Inc()
	fm.sweep.Observe(elapsed.Seconds())
	var vertical, horizontal, miss int
	for _, h := range hits {
		switch {
		case !h.OK():
			miss++
		case h.Side == raycast.Horizontal:
			horizontal++
		default:
			vertical++
		}
	}
	fm.rays.WithLabelValues("vertical").Add(float64(vertical))
	fm.rays.WithLabelValues("horizontal").Add(float64(horizontal))
	fm.rays.WithLabelValues("miss").Add(float64(miss))
}

// ObservePlayer records the player's cell.
func (fm *FrameMetrics) ObservePlayer(x, y int) {
	if fm == nil {
		return
	}
	fm.playerCell.WithLabelValues("x").Set(float64(x))
	fm.playerCell.WithLabelValues("y").Set(float64(y))
}

// Serve exposes g on addr under /metrics until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log := logging.For("metrics")
	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics listener stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv
}
