package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// Movie is the wire shape the scoring process emits, one JSON array of
// these per invocation.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"`
	ReleaseYear *int32   `json:"release_year"`
	Description *string  `json:"description"`
	PosterURL   *string  `json:"poster_url"`
}

// Recommender is the pluggable scoring capability. The API layer only
// depends on this; how scores are computed is a black box.
type Recommender interface {
	Recommend(ctx context.Context, userID int64) ([]Movie, error)
}

// ExecError reports that the scoring process failed to launch or exited
// non-zero. ParseError reports that it ran but did not emit a JSON array.
type ExecError struct{ Err error }

func (e *ExecError) Error() string { return fmt.Sprintf("recommender process failed: %v", e.Err) }
func (e *ExecError) Unwrap() error { return e.Err }

type ParseError struct{ Err error }

func (e *ParseError) Error() string { return fmt.Sprintf("recommender output invalid: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Client invokes an external scoring process once per request, passing the
// user id as the sole extra argument and reading one line of JSON from its
// stdout. Concurrent invocations are bounded so a burst of requests cannot
// fork-bomb the host, and each invocation carries a deadline.
type Client struct {
	path    string
	args    []string
	timeout time.Duration
	sem     *semaphore.Weighted
}

// New builds a client from a shell-less command line ("python3
// get_recommendations.py"). maxProcs <= 0 defaults to 4, timeout <= 0 to
// 10 seconds.
func New(command string, maxProcs int64, timeout time.Duration) (*Client, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty recommender command")
	}
	if maxProcs <= 0 {
		maxProcs = 4
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		path:    fields[0],
		args:    fields[1:],
		timeout: timeout,
		sem:     semaphore.NewWeighted(maxProcs),
	}, nil
}

// Recommend spawns the process and returns the decoded movie list. Exactly
// one attempt is made; failures are classified, never retried.
func (c *Client) Recommend(ctx context.Context, userID int64) ([]Movie, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, &ExecError{Err: err}
	}
	defer c.sem.Release(1)

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string(nil), c.args...), strconv.FormatInt(userID, 10))
	cmd := exec.CommandContext(runCtx, c.path, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, &ExecError{Err: err}
	}
	return decode(out)
}

// decode parses the first line of stdout as a JSON array of movies.
func decode(out []byte) ([]Movie, error) {
	line := out
	if i := bytes.IndexByte(out, '\n'); i >= 0 {
		line = out[:i]
	}
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("empty output")}
	}
	var movies []Movie
	if err := json.Unmarshal(line, &movies); err != nil {
		return nil, &ParseError{Err: err}
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}
