package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "message_sender"

	BotSubsystem = "bot"
)

var (
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "updates_total",
			Help:      "Total number of Telegram updates processed",
		},
		[]string{"update_type"},
	)

	RepliesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "replies_failed_total",
			Help:      "Total number of replies that failed to deliver",
		},
	)

	EmailsRelayedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "emails_relayed_total",
			Help:      "Total number of confirmed messages relayed by email",
		},
	)

	TokensGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "tokens_generated_total",
			Help:      "Total number of authorization tokens generated",
		},
	)

	StorageSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "storage_size",
			Help:      "Number of rows per entity in the relational store",
		},
		[]string{"entity"},
	)
)

func RecordUpdate(updateType string) {
	UpdatesTotal.WithLabelValues(updateType).Inc()
}

func RecordReplyFailure() {
	RepliesFailedTotal.Inc()
}

func RecordEmailRelayed() {
	EmailsRelayedTotal.Inc()
}

func RecordTokenGenerated() {
	TokensGeneratedTotal.Inc()
}

func SetStorageSize(entity string, size int64) {
	StorageSize.WithLabelValues(entity).Set(float64(size))
}
