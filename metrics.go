package nodefactory

import "github.com/prometheus/client_golang/prometheus"

const namespace = "nodefactory"

var (
	facadesBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facades_built_total",
		Help:      "Number of facades built, by binding of the result.",
	}, []string{"binding"})

	shimmedCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shimmed_calls_total",
		Help:      "Number of calls served with a legacy calling convention.",
	}, []string{"operation", "shape"})

	synthesizedNodes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "synthesized_nodes_total",
		Help:      "Number of nodes synthesized for kinds the library lacks.",
	}, []string{"kind"})
)

// Collectors returns the metrics of the package. They are not registered
// anywhere; callers register them with their own registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{facadesBuilt, shimmedCalls, synthesizedNodes}
}
