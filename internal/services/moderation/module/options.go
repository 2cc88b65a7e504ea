package module

import (
	"time"

	"commentsweep/internal/adapters/session"
	"commentsweep/internal/core/keywords"
	"commentsweep/internal/platform/config"
	"commentsweep/internal/services/moderation/service"
)

// Options controls the moderation module
type Options struct {
	APIKey         string
	BaseURL        string
	CallTimeout    time.Duration
	RetryMax       int
	RetryWaitMin   time.Duration
	RetryWaitMax   time.Duration
	SessionSecret  string
	SessionCookie  string
	KeywordsPath   string
	DeleteParallel int

	// Remote and Keywords replace the configured collaborators, mostly for tests
	Remote   service.Remote
	Keywords keywords.Source
}

// FromConfig reads YOUTUBE_, SESSION_ and MODERATION_ keys
func FromConfig(cfg config.Conf) Options {
	yt := cfg.Prefix("YOUTUBE_")
	ss := cfg.Prefix("SESSION_")
	md := cfg.Prefix("MODERATION_")
	return Options{
		APIKey:         yt.MayString("API_KEY", ""),
		BaseURL:        yt.MayString("BASE_URL", ""),
		CallTimeout:    yt.MayDuration("CALL_TIMEOUT", 10*time.Second),
		RetryMax:       yt.MayInt("RETRY_MAX", 0),
		RetryWaitMin:   yt.MayDuration("RETRY_WAIT_MIN", 500*time.Millisecond),
		RetryWaitMax:   yt.MayDuration("RETRY_WAIT_MAX", 5*time.Second),
		SessionSecret:  ss.MayString("SECRET", ""),
		SessionCookie:  ss.MayString("COOKIE_NAME", session.DefaultCookie),
		KeywordsPath:   md.MayFile("KEYWORDS_PATH", ""),
		DeleteParallel: md.MayInt("DELETE_PARALLEL", 0),
	}
}

// merge applies the non-zero fields of o over base
func merge(base, o Options) Options {
	if o.APIKey != "" {
		base.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		base.BaseURL = o.BaseURL
	}
	if o.CallTimeout != 0 {
		base.CallTimeout = o.CallTimeout
	}
	if o.RetryMax != 0 {
		base.RetryMax = o.RetryMax
	}
	if o.RetryWaitMin != 0 {
		base.RetryWaitMin = o.RetryWaitMin
	}
	if o.RetryWaitMax != 0 {
		base.RetryWaitMax = o.RetryWaitMax
	}
	if o.SessionSecret != "" {
		base.SessionSecret = o.SessionSecret
	}
	if o.SessionCookie != "" {
		base.SessionCookie = o.SessionCookie
	}
	if o.KeywordsPath != "" {
		base.KeywordsPath = o.KeywordsPath
	}
	if o.DeleteParallel != 0 {
		base.DeleteParallel = o.DeleteParallel
	}
	if o.Remote != nil {
		base.Remote = o.Remote
	}
	if o.Keywords != nil {
		base.Keywords = o.Keywords
	}
	return base
}
