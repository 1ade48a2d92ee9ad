// Package metrics holds the prometheus collectors for the negotiation core.
// Usecases record only after their transaction commits.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "taskbridge"

var (
	ConversationsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversations_opened_total",
			Help:      "Conversations opened.",
		},
	)

	MessagesAppended = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_appended_total",
			Help:      "Messages appended to the ledger by kind.",
		},
		[]string{"kind"},
	)

	ProposalTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposal_transitions_total",
			Help:      "Proposals entering each status.",
		},
		[]string{"status"},
	)

	JobsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_created_total",
			Help:      "Jobs materialized from accepted proposals.",
		},
	)

	JobTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_transitions_total",
			Help:      "Jobs entering each status.",
		},
		[]string{"status"},
	)

	ReviewRatings = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "review_rating",
			Help:      "Submitted review ratings by reviewee role.",
			Buckets:   []float64{1, 2, 3, 4, 5},
		},
		[]string{"role"},
	)
)

func init() {
	prometheus.MustRegister(ConversationsOpened)
	prometheus.MustRegister(MessagesAppended)
	prometheus.MustRegister(ProposalTransitions)
	prometheus.MustRegister(JobsCreated)
	prometheus.MustRegister(JobTransitions)
	prometheus.MustRegister(ReviewRatings)
}
