package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for licensing steps.
const (
	OutcomePassed   = "passed"
	OutcomeRejected = "rejected"
)

// Metrics holds all Prometheus metrics for the agency.
type Metrics struct {
	VehiclesRegistered *prometheus.CounterVec
	FeesCollected      prometheus.Counter
	LicensingSteps     *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		VehiclesRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dmv_vehicles_registered_total",
			Help: "Vehicles registered, by plate type",
		}, []string{"plate_type"}),
		FeesCollected: factory.NewCounter(prometheus.CounterOpts{
			Name: "dmv_registration_fees_collected_total",
			Help: "Registration fees collected across all facilities, in dollars",
		}),
		LicensingSteps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dmv_licensing_steps_total",
			Help: "Written tests, road tests and renewals administered, by outcome",
		}, []string{"step", "outcome"}),
	}
}

func (m *Metrics) ObserveRegistration(plateType string, fee int) {
	m.VehiclesRegistered.WithLabelValues(plateType).Inc()
	m.FeesCollected.Add(float64(fee))
}

func (m *Metrics) ObserveLicensingStep(step string, err error) {
	outcome := OutcomePassed
	if err != nil {
		outcome = OutcomeRejected
	}
	m.LicensingSteps.WithLabelValues(step, outcome).Inc()
}
