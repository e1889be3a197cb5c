package controller

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/George-20m/Sip-Match2/internal/domain"
)

func jsonReader(body string) io.Reader {
	return strings.NewReader(body)
}

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

// fakeCommand records requests and returns canned results.
type fakeCommand[Req, Res any] struct {
	res   Res
	err   error
	calls []Req
}

func (f *fakeCommand[Req, Res]) Execute(_ context.Context, req Req) (Res, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		var zero Res
		return zero, f.err
	}
	return f.res, nil
}
