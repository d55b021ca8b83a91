// Package coach is the gateway between typed application requests and the
// external generation service. It owns the prompt and schema contracts;
// nothing outside this package sees raw model responses.
package coach

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"vitalog/internal/llm"
)

const lookupCacheSize = 256

type Service struct {
	client llm.Client

	// Lookup features are cached by their input: the same medication or
	// topic asked twice should not cost a second model call.
	medInfo *lru.Cache[string, string]
	topics  *lru.Cache[string, TopicInfo]

	sessionMu sync.RWMutex
	sessions  map[string]*ChatSession
}

func New(client llm.Client) (*Service, error) {
	medInfo, err := lru.New[string, string](lookupCacheSize)
	if err != nil {
		return nil, err
	}
	topics, err := lru.New[string, TopicInfo](lookupCacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{client: client, medInfo: medInfo, topics: topics}, nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

// generate performs one call and classifies the failure: an empty or
// undecodable model response is a ResponseError, everything else at this
// level is a TransportError.
func (s *Service) generate(ctx context.Context, feature string, req llm.Request) (llm.Response, error) {
	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return llm.Response{}, responseErr(feature, err)
		}
		return llm.Response{}, transportErr(feature, err)
	}
	return resp, nil
}
