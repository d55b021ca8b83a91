package llm

import (
	"context"
	"errors"
	"log"
	"time"
)

// Retry retries Generate up to maxAttempts with exponential backoff
// starting at baseDelay. Permanent errors are not retried. If the context
// is canceled, it stops immediately.
func Retry(maxAttempts int, baseDelay time.Duration) Middleware {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 300 * time.Millisecond
	}
	return func(next Client) Client {
		return &retrying{next: next, max: maxAttempts, base: baseDelay}
	}
}

type retrying struct {
	next Client
	max  int
	base time.Duration
}

func (r *retrying) Name() string { return r.next.Name() }
func (r *retrying) Close() error { return r.next.Close() }

func (r *retrying) Generate(ctx context.Context, req Request) (Response, error) {
	var last error
	for i := 0; i < r.max; i++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		var pErr *PermanentError
		if errors.As(err, &pErr) {
			return Response{}, err
		}
		last = err
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		default:
		}
		time.Sleep(r.base * time.Duration(1<<i))
	}
	return Response{}, last
}

// Logging logs one line per call with the outcome, matching the request
// size so rate problems are visible without dumping prompts.
func Logging() Middleware {
	return func(next Client) Client {
		return &logging{next: next}
	}
}

type logging struct {
	next Client
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Generate(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, err := l.next.Generate(ctx, req)
	if err != nil {
		log.Printf("llm %s: %d byte prompt, error after %s: %v", l.next.Name(), len(req.Text), time.Since(start).Round(time.Millisecond), err)
		return resp, err
	}
	log.Printf("llm %s: %d byte prompt, %d byte reply in %s", l.next.Name(), len(req.Text), len(resp.Text), time.Since(start).Round(time.Millisecond))
	return resp, nil
}
