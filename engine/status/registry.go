package status

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockworld"

// Edit actions used as the tiles_changed label
const (
	ActionPlace = "place"
	ActionBreak = "break"
)

// Registry is the central metrics facade
// Collectors live on a private prometheus.Registry so tests and multiple games never collide
type Registry struct {
	reg *prometheus.Registry

	ChunkRebuilds prometheus.Counter
	Frames        prometheus.Counter
	Ticks         prometheus.Counter
	Picks         prometheus.Counter
	TilesChanged  *prometheus.CounterVec
	FPS           prometheus.Gauge
}

// NewRegistry creates and registers every collector
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ChunkRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_rebuilds_total",
			Help:      "Chunk meshes rebuilt.",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames rendered.",
		}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		Picks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_total",
			Help:      "Pick passes that found a block.",
		}),
		TilesChanged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tiles_changed_total",
			Help:      "Blocks edited by the player.",
		}, []string{"action"}),
		FPS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fps",
			Help:      "Frames per second over the last diagnostic interval.",
		}),
	}
	r.reg.MustRegister(r.ChunkRebuilds, r.Frames, r.Ticks, r.Picks, r.TilesChanged, r.FPS)
	return r
}

// TileChanged counts one edit
func (r *Registry) TileChanged(action string) {
	r.TilesChanged.WithLabelValues(action).Inc()
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
