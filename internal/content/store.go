package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"geocache-bot/internal/entity"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
)

// ErrStepNotFound is returned when a step id does not exist in the content
// document.
var ErrStepNotFound = errors.New("step not found in content document")

const cacheKey = "content_document"

// Store is the read-through view of the adventure content. The document is
// re-read from disk on each lookup so content edits apply without a restart;
// an optional cache bounds the re-read rate (ttl 0 disables it).
type Store struct {
	filePath string
	validate *validator.Validate
	cache    *gocache.Cache
	ttl      time.Duration
}

func NewStore(filePath string, cacheTTL time.Duration) *Store {
	return &Store{
		filePath: filePath,
		validate: validator.New(),
		cache:    gocache.New(cacheTTL, 10*time.Minute),
		ttl:      cacheTTL,
	}
}

// Load reads and validates the full content document.
func (s *Store) Load() ([]entity.StepDefinition, error) {
	if s.ttl > 0 {
		if cached, found := s.cache.Get(cacheKey); found {
			return cached.([]entity.StepDefinition), nil
		}
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("read content document: %w", err)
	}

	var steps []entity.StepDefinition
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse content document: %w", err)
	}

	if err := s.validateSteps(steps); err != nil {
		return nil, err
	}

	if s.ttl > 0 {
		s.cache.Set(cacheKey, steps, s.ttl)
	}
	return steps, nil
}

// Step returns the definition with the given id, or ErrStepNotFound.
func (s *Store) Step(id int) (*entity.StepDefinition, error) {
	steps, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range steps {
		if steps[i].Id == id {
			return &steps[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrStepNotFound, id)
}

// LastStepID resolves max(id) over the document. Reaching it finishes the
// adventure.
func (s *Store) LastStepID() (int, error) {
	steps, err := s.Load()
	if err != nil {
		return 0, err
	}
	if len(steps) == 0 {
		return 0, errors.New("content document has no steps")
	}
	last := steps[0].Id
	for _, step := range steps[1:] {
		if step.Id > last {
			last = step.Id
		}
	}
	return last, nil
}

// Invalidate drops the cached document so the next lookup re-reads the file.
func (s *Store) Invalidate() {
	s.cache.Delete(cacheKey)
}

func (s *Store) validateSteps(steps []entity.StepDefinition) error {
	ids := make(map[int]bool, len(steps))
	for i := range steps {
		step := &steps[i]
		if err := s.validate.Struct(step); err != nil {
			return fmt.Errorf("step %d invalid: %w", step.Id, err)
		}
		if ids[step.Id] {
			return fmt.Errorf("duplicate step id %d", step.Id)
		}
		ids[step.Id] = true

		// Question ids must start at 0 and ascend contiguously
		for j, q := range step.Questions {
			if q.Id != j {
				return fmt.Errorf("step %d: question ids must ascend from 0, got %d at position %d", step.Id, q.Id, j)
			}
		}
	}

	// Non-negative button targets must reference existing steps
	for i := range steps {
		for _, b := range steps[i].Buttons {
			if b.TargetStep >= 0 && !ids[b.TargetStep] {
				return fmt.Errorf("step %d: button %q targets unknown step %d", steps[i].Id, b.Label, b.TargetStep)
			}
		}
	}
	return nil
}
