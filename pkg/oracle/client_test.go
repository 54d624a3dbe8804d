package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sync/semaphore"
)

// The fixtures run through `sh -c script`; the appended user id lands in $0
// and is ignored by the scripts. Clients are built directly because the
// scripts contain spaces that New's field splitting would mangle.

func newSem() *semaphore.Weighted { return semaphore.NewWeighted(1) }

func TestRecommendParsesFirstLine(t *testing.T) {
	c := &Client{
		path:    "sh",
		args:    []string{"-c", `echo '[{"id":1,"title":"Heat"},{"id":2,"title":"Ronin"}]'; echo ignored`},
		timeout: time.Second,
		sem:     newSem(),
	}
	movies, err := c.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(movies) != 2 || movies[0].ID != 1 || movies[1].Title != "Ronin" {
		t.Fatalf("unexpected movies: %+v", movies)
	}
}

func TestRecommendEmptyArray(t *testing.T) {
	c := &Client{path: "sh", args: []string{"-c", `echo '[]'`}, timeout: time.Second, sem: newSem()}
	movies, err := c.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", movies)
	}
}

func TestRecommendExecFailure(t *testing.T) {
	c := &Client{path: "/nonexistent-recommender", timeout: time.Second, sem: newSem()}
	_, err := c.Recommend(context.Background(), 7)
	var ee *ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExecError, got %v", err)
	}
}

func TestRecommendNonZeroExit(t *testing.T) {
	c := &Client{path: "sh", args: []string{"-c", "exit 3"}, timeout: time.Second, sem: newSem()}
	_, err := c.Recommend(context.Background(), 7)
	var ee *ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExecError, got %v", err)
	}
}

func TestRecommendMalformedOutput(t *testing.T) {
	for _, script := range []string{`echo not-json`, `echo '{"id":1}'`, `true`} {
		c := &Client{path: "sh", args: []string{"-c", script}, timeout: time.Second, sem: newSem()}
		_, err := c.Recommend(context.Background(), 7)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("script %q: expected ParseError, got %v", script, err)
		}
	}
}

func TestRecommendTimeout(t *testing.T) {
	c := &Client{path: "sh", args: []string{"-c", "sleep 5"}, timeout: 50 * time.Millisecond, sem: newSem()}
	start := time.Now()
	_, err := c.Recommend(context.Background(), 7)
	var ee *ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExecError, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout did not bound the wait")
	}
}

func TestNewRejectsEmptyCommand(t *testing.T) {
	if _, err := New("  ", 4, time.Second); err == nil {
		t.Fatal("expected error for empty command")
	}
}
