package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	assert.NotPanics(t, func() {
		IncHTTP("test_endpoint")
		IncSearch("economy")
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookings.WithLabelValues("first"))
	IncBooking("first")
	IncBooking("first")
	assert.Equal(t, before+2, testutil.ToFloat64(bookings.WithLabelValues("first")))

	beforeCancel := testutil.ToFloat64(cancellations)
	IncCancellation()
	assert.Equal(t, beforeCancel+1, testutil.ToFloat64(cancellations))

	beforeErr := testutil.ToFloat64(storeErrors.WithLabelValues("get"))
	IncStoreError("get")
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(storeErrors.WithLabelValues("get")))
}
