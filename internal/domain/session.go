package domain

import (
	"sync"

	"github.com/google/uuid"
)

// RequestPhase tracks where the orchestrator is in its request lifecycle.
type RequestPhase string

const (
	RequestPhase_Idle       RequestPhase = "idle"
	RequestPhase_Processing RequestPhase = "processing"
	RequestPhase_Succeeded  RequestPhase = "succeeded"
	RequestPhase_Failed     RequestPhase = "failed"
)

// Session holds the mutable per-session pipeline state: the selected model,
// the set of models confirmed available under the current credential, and the
// request phase. It is created at session start and discarded at session end.
//
// At most one request may be processing at a time. BeginRequest hands out a
// fencing token; CompleteRequest commits a phase transition only when the
// token still matches the most recently issued request, so a stale settlement
// can never overwrite a newer one.
type Session struct {
	mu            sync.Mutex
	selectedModel string
	available     map[string]struct{}
	phase         RequestPhase
	currentToken  uuid.UUID
}

// NewSession creates a session with the default model selected and available
// and the request phase idle.
func NewSession() *Session {
	return &Session{
		selectedModel: DefaultModelID,
		available:     map[string]struct{}{DefaultModelID: {}},
		phase:         RequestPhase_Idle,
	}
}

// SelectedModel returns the id of the currently selected model.
func (s *Session) SelectedModel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedModel
}

// SelectModel sets the active model unconditionally. An id outside the
// catalog or the availability set is accepted and fails later at call time.
func (s *Session) SelectModel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedModel = id
}

// IsAvailable reports whether the model id has been confirmed to work with
// the current credential.
func (s *Session) IsAvailable(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.available[id]
	return ok
}

// MarkAvailable adds a model id to the availability set. Concurrent probe
// writes commute since they only add elements.
func (s *Session) MarkAvailable(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available[id] = struct{}{}
}

// ResetAvailability shrinks the availability set back to the default model,
// e.g. after a credential change. If the selected model is no longer
// available it falls back to the default.
func (s *Session) ResetAvailability() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = map[string]struct{}{DefaultModelID: {}}
	if _, ok := s.available[s.selectedModel]; !ok {
		s.selectedModel = DefaultModelID
	}
}

// Phase returns the current request phase for progress reporting.
func (s *Session) Phase() RequestPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// BeginRequest transitions the session into the processing phase and returns
// the fencing token for this request. It fails with RequestInFlightErr while
// another request is processing; terminal phases re-arm automatically.
func (s *Session) BeginRequest() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == RequestPhase_Processing {
		return uuid.Nil, NewRequestInFlightErr()
	}
	s.phase = RequestPhase_Processing
	s.currentToken = uuid.New()
	return s.currentToken, nil
}

// CompleteRequest settles the request identified by token. Stale tokens are
// discarded without a phase transition; the return value reports whether the
// result was committed.
func (s *Session) CompleteRequest(token uuid.UUID, succeeded bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.currentToken {
		return false
	}
	if succeeded {
		s.phase = RequestPhase_Succeeded
	} else {
		s.phase = RequestPhase_Failed
	}
	return true
}
