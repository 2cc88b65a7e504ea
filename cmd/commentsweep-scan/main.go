// Command commentsweep-scan classifies one page of comments for a video and optionally
// deletes the spam ones. The report is printed to stdout as JSON, logs go to stderr
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commentsweep/internal/adapters/credential"
	"commentsweep/internal/core/keywords"
	"commentsweep/internal/platform/config"
	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/platform/logger"
	"commentsweep/internal/services/moderation/domain"
	moderationmod "commentsweep/internal/services/moderation/module"
	"commentsweep/internal/services/moderation/service"
)

type output struct {
	Result *domain.ModerationResult `json:"result"`
	Delete *domain.DeleteReport     `json:"delete,omitempty"`
	Error  *perr.Wire               `json:"error,omitempty"`
}

func main() {
	var (
		ref        = flag.String("url", "", "video url or 11 character id")
		pageToken  = flag.String("page-token", "", "continue from a previous page")
		deleteSpam = flag.Bool("delete-spam", false, "delete every comment classified as spam")
		token      = flag.String("token", "", "owner access token, defaults to $YOUTUBE_ACCESS_TOKEN")
		kwPath     = flag.String("keywords", "", "keyword JSON file, defaults to the embedded lists")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	opt := logger.FromEnv()
	opt.Component = "scan"
	opt.Writer = os.Stderr
	logger.Init(opt)
	l := logger.Get()

	if *ref == "" {
		fmt.Fprintln(os.Stderr, "usage: commentsweep-scan -url <video> [-delete-spam -token <bearer>] [-keywords path]")
		os.Exit(2)
	}

	root := config.New()
	o := moderationmod.FromConfig(root)
	if *kwPath != "" {
		o.KeywordsPath = *kwPath
	}
	bearer := *token
	if bearer == "" {
		bearer = root.Prefix("YOUTUBE_").MayString("ACCESS_TOKEN", "")
	}

	svc := service.New(moderationmod.NewClient(o), service.Options{
		Keywords: keywords.FileSource{Path: o.KeywordsPath},
		Observer: service.LogObserver{Log: l},
		Parallel: o.DeleteParallel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	os.Exit(run(ctx, svc, *ref, *pageToken, *deleteSpam, credential.Bearer(bearer, "")))
}

func run(ctx context.Context, svc service.Service, ref, pageToken string, deleteSpam bool, cred credential.Credential) int {
	var out output
	code := 0

	res, err := svc.FetchAndClassify(ctx, domain.FetchInput{URL: ref, PageToken: pageToken})
	if err != nil {
		return emit(output{Error: wire(err)}, 1)
	}
	out.Result = &res

	if deleteSpam {
		ids := spamIDs(res.Comments)
		if len(ids) > 0 {
			rep, err := svc.DeleteMany(ctx, domain.DeleteInput{CommentIDs: ids}, cred)
			if rep.BatchID != "" {
				out.Delete = &rep
			}
			if err != nil {
				out.Error = wire(err)
				code = 1
			}
		}
	}
	return emit(out, code)
}

func spamIDs(cs []domain.Comment) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.IsSpam {
			ids = append(ids, c.CommentID)
		}
	}
	return ids
}

func wire(err error) *perr.Wire {
	w := perr.WireFrom(err)
	return &w
}

// seam for tests
var stdout io.Writer = os.Stdout

func emit(o output, code int) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return code
}
