package keywords

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"commentsweep/internal/core/classify"
	perr "commentsweep/internal/platform/errors"
	kit "commentsweep/internal/platform/testkit"
)

func TestDefault_Embedded(t *testing.T) {
	kw := Default()
	if len(kw.Blacklist) == 0 || len(kw.Whitelist) == 0 {
		t.Fatalf("embedded lists should not be empty: %+v", SizesOf(kw))
	}
	if !classify.IsSpam("Main judol sekarang", kw) {
		t.Fatalf("embedded blacklist should flag judol")
	}
	if classify.IsSpam("ayo lawan judol bersama", kw) {
		t.Fatalf("embedded whitelist should clear anti-gambling comments")
	}
}

func TestFileSource_EmptyPathServesEmbedded(t *testing.T) {
	kw, err := FileSource{}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if SizesOf(kw) != SizesOf(Default()) {
		t.Fatalf("expected embedded sizes, got %+v", SizesOf(kw))
	}
}

func TestFileSource_ReadsEveryCall(t *testing.T) {
	p := filepath.Join(t.TempDir(), "kw.json")
	if err := os.WriteFile(p, []byte(`{"blacklist":["judol"],"whitelist":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	src := FileSource{Path: p}
	kw, err := src.Load(context.Background())
	if err != nil || len(kw.Blacklist) != 1 {
		t.Fatalf("first load: %+v %v", kw, err)
	}

	if err := os.WriteFile(p, []byte(`{"blacklist":["judol","slot"],"whitelist":["not judol"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	kw, err = src.Load(context.Background())
	if err != nil || len(kw.Blacklist) != 2 || len(kw.Whitelist) != 1 {
		t.Fatalf("second load should see edits: %+v %v", kw, err)
	}
}

func TestFileSource_Errors(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &readFile, func(string) ([]byte, error) { return nil, errors.New("disk gone") })

	_, err := FileSource{Path: "/nope.json"}.Load(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeUnknown {
		t.Fatalf("expected internal error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileSource{}).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"both lists", `{"blacklist":["a"],"whitelist":["b"]}`, true},
		{"whitelist optional", `{"blacklist":["a"]}`, true},
		{"blacklist required", `{"whitelist":["b"]}`, false},
		{"unknown field", `{"blacklist":[],"blocklist":[]}`, false},
		{"not json", `{`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			if (err == nil) != c.ok {
				t.Fatalf("Parse(%s) err=%v, want ok=%v", c.in, err, c.ok)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	kw, err := Static{Blacklist: []string{"x"}}.Load(context.Background())
	if err != nil || len(kw.Blacklist) != 1 || kw.Whitelist != nil {
		t.Fatalf("Static.Load = %+v %v", kw, err)
	}
}
