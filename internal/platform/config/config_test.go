package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("YOUTUBE_").Prefix("RETRY_")
	if got := c.key("MAX"); got != "YOUTUBE_RETRY_MAX" {
		t.Fatalf("key = %q", got)
	}
	t.Setenv("YOUTUBE_RETRY_MAX", " 3 ")
	if got := c.MayInt("MAX", 0); got != 3 {
		t.Fatalf("nested read = %d", got)
	}
}

func TestScalars(t *testing.T) {
	c := New().Prefix("CS_")
	t.Setenv("CS_NAME", "  commentsweep ")
	t.Setenv("CS_BLANK", "   ")
	t.Setenv("CS_PARALLEL", "8")
	t.Setenv("CS_BAD_INT", "eight")
	t.Setenv("CS_SWAGGER", "false")
	t.Setenv("CS_BAD_BOOL", "maybe")
	t.Setenv("CS_TIMEOUT", "750ms")
	t.Setenv("CS_BAD_DUR", "soon")

	if c.MayString("NAME", "x") != "commentsweep" || c.MayString("BLANK", "def") != "def" || c.MayString("UNSET", "def") != "def" {
		t.Fatalf("MayString")
	}
	if c.MayInt("PARALLEL", 1) != 8 || c.MayInt("BAD_INT", 4) != 4 || c.MayInt("UNSET", 2) != 2 {
		t.Fatalf("MayInt")
	}
	if c.MayBool("SWAGGER", true) || !c.MayBool("BAD_BOOL", true) || !c.MayBool("UNSET", true) {
		t.Fatalf("MayBool")
	}
	if c.MayDuration("TIMEOUT", time.Second) != 750*time.Millisecond ||
		c.MayDuration("BAD_DUR", time.Second) != time.Second ||
		c.MayDuration("UNSET", 2*time.Second) != 2*time.Second {
		t.Fatalf("MayDuration")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"http://localhost:3000"}

	t.Setenv("CORE_API_CORS_ORIGINS", " https://a.example.com, ,https://b.example.com ,")
	if got := c.MayCSV("CORS_ORIGINS", def); !slices.Equal(got, []string{"https://a.example.com", "https://b.example.com"}) {
		t.Fatalf("got %q", got)
	}
	t.Setenv("CORE_API_CORS_ORIGINS", " , ,")
	if got := c.MayCSV("CORS_ORIGINS", def); !slices.Equal(got, def) {
		t.Fatalf("all blank: %q", got)
	}
	if got := c.MayCSV("UNSET", nil); got != nil {
		t.Fatalf("unset: %q", got)
	}
}

func TestMayFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keywords.json")
	if err := os.WriteFile(file, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}
	c := New().Prefix("MODERATION_")

	cases := map[string]string{
		file:                               file,
		dir:                                "embedded",
		filepath.Join(dir, "missing.json"): "embedded",
		"":                                 "embedded",
	}
	for val, want := range cases {
		t.Setenv("MODERATION_KEYWORDS_PATH", val)
		if got := c.MayFile("KEYWORDS_PATH", "embedded"); got != want {
			t.Fatalf("%q: got %q want %q", val, got, want)
		}
	}
}
