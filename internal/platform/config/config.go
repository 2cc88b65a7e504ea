// Package config reads typed settings from environment variables.
// A bad value never stops the process, it is logged and the default used
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"commentsweep/internal/platform/logger"
)

// Conf is a view over the environment scoped by a key prefix such as "YOUTUBE_"
type Conf struct{ prefix string }

// New is the unprefixed view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// may parses key with parse, falling back to def when unset or unparsable
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("unparsable setting, using default")
		return def
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration takes Go duration syntax, "750ms" or "2m"
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits on commas and drops blank entries. An all-blank value is def
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for p := range strings.SplitSeq(c.lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayFile is the configured path when it names a regular file. A path that
// cannot be used is logged and def returned
func (c Conf) MayFile(key, def string) string {
	return may(c, key, def, func(p string) (string, error) {
		st, err := os.Stat(p)
		if err == nil && st.IsDir() {
			err = os.ErrInvalid
		}
		return p, err
	})
}
