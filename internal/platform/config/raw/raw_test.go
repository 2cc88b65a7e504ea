package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_CALLER", "On")
	t.Setenv("LOG_COLOR", "nope")
	t.Setenv("LOG_SAMPLE_EVERY", "5")
	t.Setenv("LOG_NEG", "-2")
	t.Setenv("LOG_JUNK", "x")

	c := New().Prefix("LOG_")
	if c.Get("LEVEL", "debug") != "info" || c.Get("FORMAT", "console") != "console" {
		t.Fatalf("Get")
	}

	bools := []struct {
		key       string
		def, want bool
	}{
		{"CALLER", false, true},
		{"COLOR", true, false},
		{"UNSET", true, true},
	}
	for _, b := range bools {
		if got := c.GetBool(b.key, b.def); got != b.want {
			t.Fatalf("GetBool(%s) = %v", b.key, got)
		}
	}

	ints := map[string]int{"SAMPLE_EVERY": 5, "NEG": 7, "JUNK": 7, "UNSET": 7}
	for key, want := range ints {
		if got := c.GetInt(key, 7); got != want {
			t.Fatalf("GetInt(%s) = %d want %d", key, got, want)
		}
	}

	if New().Prefix("LOG_").Prefix("X_").prefix != "LOG_X_" {
		t.Fatalf("prefix composition")
	}
}
