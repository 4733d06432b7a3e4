package boxes

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type Stats struct {
	Inserts      atomic.Uint64
	Updates      atomic.Uint64
	Removes      atomic.Uint64
	RemoveMisses atomic.Uint64
}

type StatsSnapshot struct {
	Inserts      uint64 `json:"inserts"`
	Updates      uint64 `json:"updates"`
	Removes      uint64 `json:"removes"`
	RemoveMisses uint64 `json:"remove_misses"`
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Inserts:      s.Inserts.Load(),
		Updates:      s.Updates.Load(),
		Removes:      s.Removes.Load(),
		RemoveMisses: s.RemoveMisses.Load(),
	}
}

// Reporter exports table stats as gauges on a prometheus registry
type Reporter struct {
	gauges *prometheus.GaugeVec
}

func NewReporter(reg prometheus.Registerer) (Reporter, error) {
	gauges := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashmap_stats",
		Help: "Stats about operations applied to a hashmap table",
	}, []string{"metric"})
	if err := reg.Register(gauges); err != nil {
		return Reporter{}, err
	}
	return Reporter{gauges: gauges}, nil
}

func (r Reporter) Report(t *Table) {
	s := t.Stats()
	r.gauges.WithLabelValues("inserts").Set(float64(s.Inserts))
	r.gauges.WithLabelValues("updates").Set(float64(s.Updates))
	r.gauges.WithLabelValues("removes").Set(float64(s.Removes))
	r.gauges.WithLabelValues("remove_misses").Set(float64(s.RemoveMisses))
	r.gauges.WithLabelValues("entries").Set(float64(t.Len()))
	r.gauges.WithLabelValues("power").Set(float64(t.Power()))
}
