package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedClient fails a fixed number of times before succeeding.
type scriptedClient struct {
	failures int
	err      error
	calls    int
}

func (c *scriptedClient) Name() string { return "scripted" }
func (c *scriptedClient) Close() error { return nil }

func (c *scriptedClient) Generate(_ context.Context, _ Request) (Response, error) {
	c.calls++
	if c.calls <= c.failures {
		return Response{}, c.err
	}
	return Response{Text: "ok"}, nil
}

func TestRetry_RecoversFromTransientErrors(t *testing.T) {
	base := &scriptedClient{failures: 2, err: errors.New("connection reset")}
	cli := Chain(base, Retry(3, time.Millisecond))

	resp, err := cli.Generate(context.Background(), Request{Text: "hi"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("text = %q, want ok", resp.Text)
	}
	if base.calls != 3 {
		t.Errorf("calls = %d, want 3", base.calls)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	wantErr := errors.New("unavailable")
	base := &scriptedClient{failures: 10, err: wantErr}
	cli := Chain(base, Retry(3, time.Millisecond))

	_, err := cli.Generate(context.Background(), Request{Text: "hi"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if base.calls != 3 {
		t.Errorf("calls = %d, want 3", base.calls)
	}
}

func TestRetry_DoesNotRetryPermanentErrors(t *testing.T) {
	base := &scriptedClient{failures: 10, err: NewPermanentError(errors.New("invalid api key"))}
	cli := Chain(base, Retry(5, time.Millisecond))

	_, err := cli.Generate(context.Background(), Request{Text: "hi"})
	var pErr *PermanentError
	if !errors.As(err, &pErr) {
		t.Fatalf("err = %v, want PermanentError", err)
	}
	if base.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", base.calls)
	}
}

func TestRetry_StopsOnCanceledContext(t *testing.T) {
	base := &scriptedClient{failures: 10, err: errors.New("transient")}
	cli := Chain(base, Retry(5, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cli.Generate(ctx, Request{Text: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if base.calls != 1 {
		t.Errorf("calls = %d, want 1", base.calls)
	}
}

func TestChain_AppliesMiddlewareInOrder(t *testing.T) {
	base := &scriptedClient{}
	cli := Chain(base, Retry(2, time.Millisecond), Logging())
	if cli.Name() != "scripted" {
		t.Errorf("name = %q, want scripted", cli.Name())
	}
	if _, err := cli.Generate(context.Background(), Request{Text: "hi"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}
