// Package classify decides whether a comment is spam from its text and a keyword configuration.
//
// The rules, in order:
//  1. text that is not already in NFKD form is spam (stylized lookalike letters)
//  2. otherwise the lower-cased text is spam when it contains a blacklist entry
//     and contains no whitelist entry
//
// Matching is plain substring containment, partial-word hits count.
package classify

import (
	"sync"

	pstrings "commentsweep/internal/platform/strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Reasons reported by Explain
const (
	ReasonNone          = ""
	ReasonNormalization = "normalization"
	ReasonBlacklist     = "blacklist"
)

// KeywordConfig holds the blacklist and whitelist used for one classification pass
type KeywordConfig struct {
	Blacklist []string `json:"blacklist"`
	Whitelist []string `json:"whitelist"`
}

// Verdict is the outcome of classifying one text
type Verdict struct {
	Spam   bool
	Reason string
	// Blacklisted is the first blacklist entry found, empty when none matched
	Blacklisted string
	// Whitelisted is the first whitelist entry found, empty when none matched
	Whitelisted string
}

// Matcher is a compiled KeywordConfig. Safe for concurrent use
type Matcher struct {
	black *needles
	white *needles
}

// cases.Caser is stateful, keep one per goroutine
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

func lower(s string) string {
	c := lowerPool.Get().(cases.Caser)
	out := c.String(s)
	c.Reset()
	lowerPool.Put(c)
	return out
}

// Compile prepares kw for repeated classification.
// Blank entries are dropped, the rest are lower-cased with the same caser as the text and never trimmed
func Compile(kw KeywordConfig) *Matcher {
	return &Matcher{
		black: compileNeedles(lowerAll(pstrings.NonBlank(kw.Blacklist))),
		white: compileNeedles(lowerAll(pstrings.NonBlank(kw.Whitelist))),
	}
}

func lowerAll(in []string) []string {
	for i, s := range in {
		in[i] = lower(s)
	}
	return in
}

// Explain classifies text and reports why
func (m *Matcher) Explain(text string) Verdict {
	if text == "" {
		return Verdict{}
	}
	if !norm.NFKD.IsNormalString(text) {
		return Verdict{Spam: true, Reason: ReasonNormalization}
	}

	lt := []byte(lower(text))
	v := Verdict{
		Blacklisted: m.black.first(lt),
		Whitelisted: m.white.first(lt),
	}
	if v.Blacklisted != "" && v.Whitelisted == "" {
		v.Spam = true
		v.Reason = ReasonBlacklist
	}
	return v
}

// IsSpam reports whether text is spam under m
func (m *Matcher) IsSpam(text string) bool { return m.Explain(text).Spam }

// Explain classifies a single text against kw
func Explain(text string, kw KeywordConfig) Verdict { return Compile(kw).Explain(text) }

// IsSpam reports whether text is spam against kw
func IsSpam(text string, kw KeywordConfig) bool { return Explain(text, kw).Spam }
