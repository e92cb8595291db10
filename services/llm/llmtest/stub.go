// Package llmtest provides a scripted Collaborator for tests.
package llmtest

import (
	"context"
	"errors"
	"sync"

	"github.com/yashwanthkasi9182/PlayMate/services/llm"
)

// ErrNoReply is returned once the script is exhausted.
var ErrNoReply = errors.New("llmtest: no scripted reply left")

// Reply is one scripted collaborator answer
type Reply struct {
	Text string
	Err  error
}

// Text scripts a successful completion
func Text(s string) Reply { return Reply{Text: s} }

// Fail scripts a failed completion
func Fail(err error) Reply { return Reply{Err: err} }

// Stub replays scripted replies in order and records every request.
type Stub struct {
	mu      sync.Mutex
	replies []Reply
	calls   []llm.CompletionRequest
}

// NewStub creates a stub answering with replies in order
func NewStub(replies ...Reply) *Stub {
	return &Stub{replies: replies}
}

func (s *Stub) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, req)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.replies) == 0 {
		return "", ErrNoReply
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	return next.Text, next.Err
}

// Calls returns the number of requests received
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastRequest returns the most recent request
func (s *Stub) LastRequest() llm.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return llm.CompletionRequest{}
	}
	return s.calls[len(s.calls)-1]
}
