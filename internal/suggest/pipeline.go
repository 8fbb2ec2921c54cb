package suggest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

// Pipeline runs analyses and holds the pending pool of validated
// suggestions. Overlapping analyses are not cancelled; each request gets a
// monotonic sequence number and only the latest issued request may publish
// its result, so stale responses are discarded.
type Pipeline struct {
	client Client

	mu      sync.Mutex
	seq     uint64
	latest  uint64
	pending []SuggestedTask
}

// NewPipeline creates a pipeline over the given AI client.
func NewPipeline(client Client) *Pipeline {
	return &Pipeline{client: client}
}

// Analyze calls the AI collaborator and, if this is still the newest
// request, replaces the pending pool with the validated results. A stale
// response returns (nil, false, nil) and changes nothing.
func (p *Pipeline) Analyze(ctx context.Context, description string, departments []directory.Department) ([]SuggestedTask, bool, error) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.latest = seq
	p.mu.Unlock()

	proposals, err := p.client.GenerateTasks(ctx, description, departments)
	if err != nil {
		return nil, false, err
	}
	validated := Validate(proposals, departments, time.Now())

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.latest {
		return nil, false, nil
	}
	p.pending = validated
	return append([]SuggestedTask(nil), validated...), true, nil
}

// Pending returns a copy of the pending suggestion pool.
func (p *Pipeline) Pending() []SuggestedTask {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]SuggestedTask(nil), p.pending...)
}

// Get looks up a pending suggestion without removing it, so a failed
// promotion leaves the suggestion in the pool.
func (p *Pipeline) Get(id string) (SuggestedTask, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.pending {
		if s.ID == id {
			return s, nil
		}
	}
	return SuggestedTask{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove drops a suggestion from the pool, either after a successful
// promotion or on discard.
func (p *Pipeline) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.pending {
		if s.ID == id {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
