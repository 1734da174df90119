package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-message-sender/internal/common/metrics"
)

func TestRecordUpdate(t *testing.T) {
	before := testutil.ToFloat64(metrics.UpdatesTotal.WithLabelValues("command"))

	metrics.RecordUpdate("command")

	after := testutil.ToFloat64(metrics.UpdatesTotal.WithLabelValues("command"))
	assert.Equal(t, before+1, after)
}

func TestRecordEmailRelayed(t *testing.T) {
	before := testutil.ToFloat64(metrics.EmailsRelayedTotal)

	metrics.RecordEmailRelayed()

	after := testutil.ToFloat64(metrics.EmailsRelayedTotal)
	assert.Equal(t, before+1, after)
}

func TestRecordTokenGenerated(t *testing.T) {
	before := testutil.ToFloat64(metrics.TokensGeneratedTotal)

	metrics.RecordTokenGenerated()

	after := testutil.ToFloat64(metrics.TokensGeneratedTotal)
	assert.Equal(t, before+1, after)
}

func TestSetStorageSize(t *testing.T) {
	metrics.SetStorageSize("users", 42)

	value := testutil.ToFloat64(metrics.StorageSize.WithLabelValues("users"))
	assert.Equal(t, float64(42), value)
}
