// Package metrics exposes the engine's operational counters on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_questions_drawn_total",
		Help: "Questions drawn from the pool and marked used.",
	})

	AnswersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answers_submitted_total",
		Help: "Answers submitted, partitioned by outcome.",
	}, []string{"outcome"}) // correct, incorrect, timeout

	MatchesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_matches_completed_total",
		Help: "Matches driven to completion, including forced completions.",
	})

	BracketsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_brackets_generated_total",
		Help: "Successful bracket generation runs.",
	})
)
