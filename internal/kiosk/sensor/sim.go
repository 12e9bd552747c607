package sensor

import (
	"context"
	"sync"
)

// DefaultConfidence is the score the simulator reports for an exact
// print match.
const DefaultConfidence = 120

// Sim is a deterministic in-memory fingerprint module. Prints are plain
// strings: two captures of the same string are "the same finger".
// Tests and benchtop deployments drive it by queueing presses and
// fault injections.
type Sim struct {
	mu sync.Mutex

	capacity   int
	confidence int

	queue   []press        // upcoming Capture outcomes
	working string         // last captured print
	buffers map[int]string // converted samples by buffer slot
	model   string
	bank    map[int]string // slot id -> print
}

type press struct {
	print string
	err   error
}

// NewSim returns an empty simulator with the given bank capacity.
func NewSim(capacity int) *Sim {
	return &Sim{
		capacity:   capacity,
		confidence: DefaultConfidence,
		buffers:    make(map[int]string),
		bank:       make(map[int]string),
	}
}

// Press queues a finger press; the next Capture reads this print.
func (s *Sim) Press(print string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, press{print: print})
}

// FailNext queues a capture-time failure (e.g. ErrConvert surfaces on
// the following Convert, any other error on Capture itself).
func (s *Sim) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, press{err: err})
}

// SetConfidence overrides the score reported for matches.
func (s *Sim) SetConfidence(c int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confidence = c
}

// Enroll plants a template directly into the bank, bypassing the
// capture protocol. Test setup helper.
func (s *Sim) Enroll(id int, print string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bank[id] = print
}

func (s *Sim) Capture(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return ErrNoFinger
	}
	p := s.queue[0]
	s.queue = s.queue[1:]

	if p.err != nil && p.err != ErrConvert {
		return p.err
	}
	s.working = p.print
	if p.err == ErrConvert {
		s.working = "" // conversion of an empty image fails below
	}
	return nil
}

func (s *Sim) Convert(buffer int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == "" {
		return ErrConvert
	}
	s.buffers[buffer] = s.working
	return nil
}

func (s *Sim) CreateModel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffers[Buffer1] == "" || s.buffers[Buffer1] != s.buffers[Buffer2] {
		return ErrModelMismatch
	}
	s.model = s.buffers[Buffer1]
	return nil
}

func (s *Sim) StoreModel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == "" {
		return ErrModelMismatch
	}
	if len(s.bank) >= s.capacity {
		if _, exists := s.bank[id]; !exists {
			return ErrBankFull
		}
	}
	s.bank[id] = s.model
	s.model = ""
	return nil
}

func (s *Sim) DeleteModel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bank[id]; !ok {
		return ErrNoTemplate
	}
	delete(s.bank, id)
	return nil
}

func (s *Sim) Search(buffer int) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	print := s.buffers[buffer]
	if print == "" {
		return Match{}, ErrNoMatch
	}
	for id, enrolled := range s.bank {
		if enrolled == print {
			return Match{ID: id, Confidence: s.confidence}, nil
		}
	}
	return Match{}, ErrNoMatch
}

func (s *Sim) TemplateCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bank), nil
}

func (s *Sim) Capacity() int { return s.capacity }

func (s *Sim) Ping(ctx context.Context) error { return nil }

// Has reports whether slot id holds a template. Test assertion helper.
func (s *Sim) Has(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bank[id]
	return ok
}
