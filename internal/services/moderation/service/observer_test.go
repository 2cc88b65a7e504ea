package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"commentsweep/internal/adapters/youtube"
	"commentsweep/internal/platform/metrics"
	"commentsweep/internal/services/moderation/domain"

	"github.com/rs/zerolog"
)

type recordingObserver struct {
	mu      sync.Mutex
	fetches []FetchEvent
	deletes []DeleteEvent
}

func (r *recordingObserver) FetchDone(_ context.Context, ev FetchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, ev)
}

func (r *recordingObserver) DeleteDone(_ context.Context, ev DeleteEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes = append(r.deletes, ev)
}

func TestService_ReportsEveryOperation(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	r := &fakeRemote{
		page:       page(thread("c1", "judol"), thread("c2", "hello")),
		deleteErrs: map[string]error{"y": &youtube.APIError{Status: 404}},
	}
	s := newSvc(t, r, func(o *Options) { o.Observer = Observers{a, nil, b} })

	_, _ = s.FetchAndClassify(context.Background(), domain.FetchInput{URL: "dQw4w9WgXcQ"})
	_, _ = s.FetchAndClassify(context.Background(), domain.FetchInput{URL: "nope"})
	_, _ = s.DeleteMany(context.Background(), domain.DeleteInput{CommentIDs: []string{"x", "y"}}, owner)

	for _, o := range []*recordingObserver{a, b} {
		if len(o.fetches) != 2 || len(o.deletes) != 1 {
			t.Fatalf("fan out missed events: %d fetches %d deletes", len(o.fetches), len(o.deletes))
		}
		if ev := o.fetches[0]; ev.Err != nil || ev.Total != 2 || ev.Spam != 1 || ev.VideoID != "dQw4w9WgXcQ" {
			t.Fatalf("fetch event = %+v", ev)
		}
		if o.fetches[1].Err == nil {
			t.Fatalf("failed fetch should carry its error")
		}
		if ev := o.deletes[0]; ev.BatchID != "batch-test" || len(ev.Outcomes) != 2 || ev.Err != nil {
			t.Fatalf("delete event = %+v", ev)
		}
	}
}

func TestLogObserver_WritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf).Level(zerolog.DebugLevel)
	l := LogObserver{Log: &lg}

	l.FetchDone(context.Background(), FetchEvent{VideoID: "vid", Total: 3, Spam: 1, Elapsed: time.Millisecond})
	l.DeleteDone(context.Background(), DeleteEvent{
		BatchID: "b1",
		Outcomes: []domain.DeletionOutcome{
			{CommentID: "a", Deleted: true},
			{CommentID: "b", Reason: domain.FailurePermission, Error: msgPermission},
		},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %s", len(lines), buf.String())
	}
	var fetch, failure, summary map[string]any
	for i, dst := range []*map[string]any{&fetch, &failure, &summary} {
		if err := json.Unmarshal([]byte(lines[i]), dst); err != nil {
			t.Fatalf("line %d not json: %v", i, err)
		}
	}
	if fetch["message"] != "comments classified" || fetch["video_id"] != "vid" || fetch["spam"] != float64(1) {
		t.Fatalf("fetch line = %v", fetch)
	}
	if failure["level"] != "debug" || failure["comment_id"] != "b" || failure["reason"] != "permission" {
		t.Fatalf("failure line = %v", failure)
	}
	if summary["message"] != "delete batch settled" || summary["deleted"] != float64(1) || summary["failed"] != float64(1) {
		t.Fatalf("summary line = %v", summary)
	}
}

func TestLogObserver_FailuresWarn(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf)
	l := LogObserver{Log: &lg}

	_, err := newSvc(t, &fakeRemote{}).FetchAndClassify(context.Background(), domain.FetchInput{URL: "nope"})
	l.FetchDone(context.Background(), FetchEvent{Err: err})

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if line["level"] != "warn" || line["reason"] != ReasonInvalidReference {
		t.Fatalf("line = %v", line)
	}
}

func gathered(t *testing.T, reg *metrics.Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := map[string]float64{}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), metrics.Namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestPromObserver_Counts(t *testing.T) {
	reg := metrics.New()
	p := NewPromObserver(reg)

	p.FetchDone(context.Background(), FetchEvent{Total: 5, Spam: 2})
	p.FetchDone(context.Background(), FetchEvent{Err: errNoAPIKey})
	r := &fakeRemote{deleteErrs: map[string]error{"b": &youtube.APIError{Status: 403}}}
	s := newSvc(t, r, func(o *Options) { o.Observer = p })
	_, _ = s.DeleteMany(context.Background(), domain.DeleteInput{CommentIDs: []string{"a", "b"}}, owner)
	_, _ = s.DeleteMany(context.Background(), domain.DeleteInput{CommentIDs: []string{"b"}}, owner)

	got := gathered(t, reg)
	want := map[string]float64{
		"commentsweep_fetch_total,outcome=ok":                                1,
		"commentsweep_fetch_total,outcome=error":                             1,
		"commentsweep_comments_classified_total,verdict=spam":                2,
		"commentsweep_comments_classified_total,verdict=clean":               3,
		"commentsweep_fetch_duration_seconds":                                2,
		"commentsweep_comment_deletes_total,reason=,result=deleted":          1,
		"commentsweep_comment_deletes_total,reason=permission,result=failed": 2,
		"commentsweep_delete_batches_total,outcome=ok":                       1,
		"commentsweep_delete_batches_total,outcome=permission":               1,
		"commentsweep_delete_batch_duration_seconds":                         2,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %v (all: %v)", k, got[k], v, got)
		}
	}
}
