package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRegistration(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRegistration("regular", 100)
	m.ObserveRegistration("antique", 25)
	m.ObserveRegistration("regular", 100)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.VehiclesRegistered.WithLabelValues("regular")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.VehiclesRegistered.WithLabelValues("antique")))
	assert.Equal(t, float64(225), testutil.ToFloat64(m.FeesCollected))
}

func TestObserveLicensingStep(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLicensingStep("written_test", nil)
	m.ObserveLicensingStep("written_test", errors.New("no permit"))
	m.ObserveLicensingStep("written_test", errors.New("underage"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LicensingSteps.WithLabelValues("written_test", OutcomePassed)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LicensingSteps.WithLabelValues("written_test", OutcomeRejected)))
}
