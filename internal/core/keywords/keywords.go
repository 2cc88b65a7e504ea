// Package keywords supplies the blacklist and whitelist the classifier runs against.
// Sources are consulted once per classification pass so edits take effect without a restart
package keywords

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"commentsweep/internal/core/classify"
	perr "commentsweep/internal/platform/errors"
)

//go:embed spamKeywords.json
var embedded []byte

// Source loads a keyword configuration
type Source interface {
	Load(ctx context.Context) (classify.KeywordConfig, error)
}

// Static is a fixed in-memory Source
type Static classify.KeywordConfig

// Load returns the static lists
func (s Static) Load(context.Context) (classify.KeywordConfig, error) {
	return classify.KeywordConfig(s), nil
}

// FileSource reads a {"blacklist": [...], "whitelist": [...]} JSON document from Path on every Load.
// An empty Path serves the embedded default lists
type FileSource struct {
	Path string
}

// seam for tests
var readFile = os.ReadFile

// Load reads and parses the keyword file
func (f FileSource) Load(ctx context.Context) (classify.KeywordConfig, error) {
	if err := ctx.Err(); err != nil {
		return classify.KeywordConfig{}, err
	}
	if f.Path == "" {
		return Parse(embedded)
	}
	b, err := readFile(f.Path)
	if err != nil {
		return classify.KeywordConfig{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "failed to read keyword file %s", f.Path)
	}
	return Parse(b)
}

// Default returns the embedded keyword lists
func Default() classify.KeywordConfig {
	kw, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return kw
}

// Parse decodes a keyword document. Unknown fields are rejected so typos surface early
func Parse(b []byte) (classify.KeywordConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var raw struct {
		Blacklist *[]string `json:"blacklist"`
		Whitelist *[]string `json:"whitelist"`
	}
	if err := dec.Decode(&raw); err != nil {
		return classify.KeywordConfig{}, perr.Wrap(err, perr.ErrorCodeUnknown, "invalid keyword document")
	}
	if raw.Blacklist == nil {
		return classify.KeywordConfig{}, perr.New(perr.ErrorCodeUnknown, "invalid keyword document: blacklist is required")
	}
	kw := classify.KeywordConfig{Blacklist: *raw.Blacklist}
	if raw.Whitelist != nil {
		kw.Whitelist = *raw.Whitelist
	}
	return kw, nil
}

// Sizes reports list lengths, used by the meta endpoint
type Sizes struct {
	Blacklist int `json:"blacklist"`
	Whitelist int `json:"whitelist"`
}

// SizesOf counts entries in kw
func SizesOf(kw classify.KeywordConfig) Sizes {
	return Sizes{Blacklist: len(kw.Blacklist), Whitelist: len(kw.Whitelist)}
}
