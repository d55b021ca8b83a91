package llm

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model produced no usable candidate.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// PermanentError marks an error that will not resolve with retries (bad
// request shape, unparseable output). The retry middleware passes these
// through untouched.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// Blob is inline binary media (already base64-decoded) sent with a prompt.
type Blob struct {
	MIMEType string
	Data     []byte
}

// Turn is one prior exchange in a multi-turn conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Request describes a single generation call. Text is always set; the
// remaining fields are optional per feature.
type Request struct {
	System  string
	Text    string
	Media   *Blob
	History []Turn
	Schema  *genai.Schema // non-nil constrains output to application/json
	Search  bool          // enable search grounding
}

// Source is a citation attached to a grounded response.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type Response struct {
	Text    string
	Sources []Source
}

// Client is the boundary to the generation service. Cross-cutting concerns
// (retries, logging) are applied via Middleware.
type Client interface {
	Name() string
	Generate(ctx context.Context, req Request) (Response, error)
	Close() error
}

// Middleware wraps a Client with additional behavior.
type Middleware func(Client) Client

// Chain applies middlewares left to right: the first listed is outermost.
func Chain(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
