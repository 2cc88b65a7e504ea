package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"commentsweep/internal/adapters/credential"
	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/platform/testkit"
	"commentsweep/internal/services/moderation/domain"
)

type fakeSvc struct {
	res       domain.ModerationResult
	fetchErr  error
	deleteErr error
	deleted   []string
	cred      credential.Credential
}

func (f *fakeSvc) FetchAndClassify(context.Context, domain.FetchInput) (domain.ModerationResult, error) {
	return f.res, f.fetchErr
}

func (f *fakeSvc) DeleteMany(_ context.Context, in domain.DeleteInput, c credential.Credential) (domain.DeleteReport, error) {
	f.deleted, f.cred = in.CommentIDs, c
	outs := make([]domain.DeletionOutcome, len(in.CommentIDs))
	for i, id := range in.CommentIDs {
		outs[i] = domain.DeletionOutcome{CommentID: id, Deleted: f.deleteErr == nil}
	}
	return domain.Report("b1", outs), f.deleteErr
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	testkit.Swap[io.Writer](t, &stdout, &buf)
	return &buf
}

var page = domain.ModerationResult{
	VideoID: "dQw4w9WgXcQ",
	Comments: []domain.Comment{
		{CommentID: "a", IsSpam: true},
		{CommentID: "b"},
		{CommentID: "c", IsSpam: true},
	},
	TotalComments: 3,
	SpamComments:  2,
}

func TestRun_ClassifyOnly(t *testing.T) {
	buf := capture(t)
	f := &fakeSvc{res: page}
	if code := run(context.Background(), f, "dQw4w9WgXcQ", "", false, credential.Credential{}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if f.deleted != nil {
		t.Fatalf("nothing should be deleted without -delete-spam")
	}
	var out output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil || out.Result == nil || out.Result.SpamComments != 2 || out.Delete != nil {
		t.Fatalf("out = %s (%v)", buf.String(), err)
	}
}

func TestRun_DeletesOnlySpam(t *testing.T) {
	buf := capture(t)
	f := &fakeSvc{res: page}
	cred := credential.Bearer("ya29", "")
	if code := run(context.Background(), f, "x", "", true, cred); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if len(f.deleted) != 2 || f.deleted[0] != "a" || f.deleted[1] != "c" || f.cred.Token != "ya29" {
		t.Fatalf("deleted %v with %+v", f.deleted, f.cred)
	}
	var out output
	_ = json.Unmarshal(buf.Bytes(), &out)
	if out.Delete == nil || len(out.Delete.SuccessfulDeletes) != 2 {
		t.Fatalf("out = %s", buf.String())
	}
}

func TestRun_Errors(t *testing.T) {
	buf := capture(t)
	f := &fakeSvc{fetchErr: perr.WithReason(perr.Validationf("Invalid YouTube URL"), "invalid_reference")}
	if code := run(context.Background(), f, "not a url", "", true, credential.Credential{}); code != 1 {
		t.Fatalf("exit = %d", code)
	}
	var out output
	_ = json.Unmarshal(buf.Bytes(), &out)
	if out.Error == nil || out.Error.Reason != "invalid_reference" || out.Result != nil {
		t.Fatalf("out = %s", buf.String())
	}

	buf.Reset()
	f = &fakeSvc{res: page, deleteErr: perr.Unauthorizedf("Unauthorized")}
	if code := run(context.Background(), f, "x", "", true, credential.Credential{}); code != 1 {
		t.Fatalf("exit = %d", code)
	}
	out = output{}
	_ = json.Unmarshal(buf.Bytes(), &out)
	if out.Error == nil || out.Error.Code != perr.ErrorCodeUnauthorized {
		t.Fatalf("out = %s", buf.String())
	}
}
