// Package metrics exposes Prometheus instruments for command outcomes and
// book size.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels the result of one command.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeParseError   Outcome = "parse_error"
	OutcomeCommandError Outcome = "command_error"
	OutcomeStorageError Outcome = "storage_error"
)

type Metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	persons  prometheus.Gauge
	projects prometheus.Gauge
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "projectbook_commands_total",
			Help: "Commands executed, by command word and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "projectbook_command_duration_seconds",
			Help:    "Time spent executing and saving a command.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		persons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "projectbook_persons",
			Help: "Persons currently in the book.",
		}),
		projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "projectbook_projects",
			Help: "Projects currently in the book.",
		}),
	}
	reg.MustRegister(m.commands, m.duration, m.persons, m.projects)
	return m
}

// ObserveCommand counts one command. Unparsable input is counted under
// the command "unknown".
func (m *Metrics) ObserveCommand(command string, outcome Outcome, elapsed time.Duration) {
	if command == "" {
		command = "unknown"
	}
	m.commands.WithLabelValues(command, string(outcome)).Inc()
	m.duration.WithLabelValues(command).Observe(elapsed.Seconds())
}

func (m *Metrics) SetBookSize(persons, projects int) {
	m.persons.Set(float64(persons))
	m.projects.Set(float64(projects))
}
