package service

import (
	"context"
	"time"

	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/platform/logger"
	"commentsweep/internal/platform/metrics"
	"commentsweep/internal/services/moderation/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// FetchEvent describes one FetchAndClassify call
type FetchEvent struct {
	VideoID string
	Total   int
	Spam    int
	Elapsed time.Duration
	Err     error
}

// DeleteEvent describes one DeleteMany call. Outcomes is empty when the batch was rejected up front
type DeleteEvent struct {
	BatchID  string
	Outcomes []domain.DeletionOutcome
	Elapsed  time.Duration
	Err      error
}

// Observer receives operation events. Implementations must be safe for concurrent use
type Observer interface {
	FetchDone(ctx context.Context, ev FetchEvent)
	DeleteDone(ctx context.Context, ev DeleteEvent)
}

// NopObserver drops every event
type NopObserver struct{}

// FetchDone implements Observer
func (NopObserver) FetchDone(context.Context, FetchEvent) {}

// DeleteDone implements Observer
func (NopObserver) DeleteDone(context.Context, DeleteEvent) {}

// Observers fans every event out in order
type Observers []Observer

// FetchDone implements Observer
func (o Observers) FetchDone(ctx context.Context, ev FetchEvent) {
	for _, x := range o {
		if x != nil {
			x.FetchDone(ctx, ev)
		}
	}
}

// DeleteDone implements Observer
func (o Observers) DeleteDone(ctx context.Context, ev DeleteEvent) {
	for _, x := range o {
		if x != nil {
			x.DeleteDone(ctx, ev)
		}
	}
}

// LogObserver writes one structured line per event
type LogObserver struct {
	// Log overrides the request scoped logger, mostly for tests
	Log *logger.Logger
}

func (l LogObserver) log(ctx context.Context) *logger.Logger {
	if l.Log != nil {
		return l.Log
	}
	return logger.C(ctx)
}

// FetchDone implements Observer
func (l LogObserver) FetchDone(ctx context.Context, ev FetchEvent) {
	log := l.log(ctx)
	if ev.Err != nil {
		log.Warn().Err(ev.Err).
			Str("reason", perr.ReasonOf(ev.Err)).
			Dur("elapsed", ev.Elapsed).
			Msg("fetch comments failed")
		return
	}
	log.Info().
		Str("video_id", ev.VideoID).
		Int("total", ev.Total).
		Int("spam", ev.Spam).
		Dur("elapsed", ev.Elapsed).
		Msg("comments classified")
}

// DeleteDone implements Observer
func (l LogObserver) DeleteDone(ctx context.Context, ev DeleteEvent) {
	log := l.log(ctx)
	deleted, failed := 0, 0
	for _, o := range ev.Outcomes {
		if o.Deleted {
			deleted++
			continue
		}
		failed++
		log.Debug().
			Str("batch_id", ev.BatchID).
			Str("comment_id", o.CommentID).
			Str("reason", string(o.Reason)).
			Str("error", o.Error).
			Msg("comment delete failed")
	}

	evt := log.Info()
	if ev.Err != nil {
		evt = log.Warn().Err(ev.Err).Str("reason", perr.ReasonOf(ev.Err))
	}
	evt.Str("batch_id", ev.BatchID).
		Int("requested", len(ev.Outcomes)).
		Int("deleted", deleted).
		Int("failed", failed).
		Dur("elapsed", ev.Elapsed).
		Msg("delete batch settled")
}

// PromObserver exports counters and latencies
type PromObserver struct {
	fetches    *prometheus.CounterVec
	classified *prometheus.CounterVec
	fetchDur   prometheus.Histogram
	deletes    *prometheus.CounterVec
	batches    *prometheus.CounterVec
	batchDur   prometheus.Histogram
}

// NewPromObserver registers the moderation metrics on reg
func NewPromObserver(reg *metrics.Registry) *PromObserver {
	f := reg.Factory()
	return &PromObserver{
		fetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "fetch_total",
			Help:      "Fetch and classify calls by outcome",
		}, []string{"outcome"}),
		classified: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "comments_classified_total",
			Help:      "Comments classified by verdict",
		}, []string{"verdict"}),
		fetchDur: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time to fetch and classify one page",
			Buckets:   prometheus.ExponentialBucketsRange(0.01, 30, 12),
		}),
		deletes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "comment_deletes_total",
			Help:      "Per comment delete results",
		}, []string{"result", "reason"}),
		batches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "delete_batches_total",
			Help:      "Delete batches by outcome",
		}, []string{"outcome"}),
		batchDur: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "delete_batch_duration_seconds",
			Help:      "Time for a delete batch to settle",
			Buckets:   prometheus.ExponentialBucketsRange(0.01, 60, 12),
		}),
	}
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if r := perr.ReasonOf(err); r != "" {
		return r
	}
	return "error"
}

// FetchDone implements Observer
func (p *PromObserver) FetchDone(_ context.Context, ev FetchEvent) {
	p.fetches.WithLabelValues(outcomeLabel(ev.Err)).Inc()
	p.fetchDur.Observe(ev.Elapsed.Seconds())
	if ev.Err != nil {
		return
	}
	p.classified.WithLabelValues("spam").Add(float64(ev.Spam))
	p.classified.WithLabelValues("clean").Add(float64(ev.Total - ev.Spam))
}

// DeleteDone implements Observer
func (p *PromObserver) DeleteDone(_ context.Context, ev DeleteEvent) {
	p.batches.WithLabelValues(outcomeLabel(ev.Err)).Inc()
	p.batchDur.Observe(ev.Elapsed.Seconds())
	for _, o := range ev.Outcomes {
		if o.Deleted {
			p.deletes.WithLabelValues("deleted", "").Inc()
			continue
		}
		p.deletes.WithLabelValues("failed", string(o.Reason)).Inc()
	}
}
