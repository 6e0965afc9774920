package deals

import (
	"fmt"
	"slices"
	"sync"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

// Options carry the shared dependencies a strategy may need.
type Options struct {
	Classifier *Classifier
}

// StrategyFactory creates a Strategy from shared options
type StrategyFactory func(opts Options) (Strategy, error)

// Registry manages strategy factories by name
type Registry interface {
	// Register adds a new strategy factory
	Register(name domain.StrategyName, factory StrategyFactory) error
	// Create instantiates the named strategy
	Create(name domain.StrategyName, opts Options) (Strategy, error)
	// ListStrategies returns the registered names in sorted order
	ListStrategies() []domain.StrategyName
}

type registry struct {
	mu        sync.RWMutex
	factories map[domain.StrategyName]StrategyFactory
}

// NewRegistry creates a registry pre-populated with factories
func NewRegistry(factories map[domain.StrategyName]StrategyFactory) Registry {
	r := &registry{
		factories: make(map[domain.StrategyName]StrategyFactory, len(factories)),
	}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

// DefaultRegistry registers the three built-in strategies.
func DefaultRegistry() Registry {
	return NewRegistry(map[domain.StrategyName]StrategyFactory{
		domain.StrategyRandom:     RandomAllocationFactory,
		domain.StrategyPositional: PositionalRotationFactory,
		domain.StrategyCategory:   CategoryRotationFactory,
	})
}

func (r *registry) Register(name domain.StrategyName, factory StrategyFactory) error {
	if name == "" {
		return fmt.Errorf("strategy name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("strategy %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name domain.StrategyName, opts Options) (Strategy, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return factory(opts)
}

func (r *registry) ListStrategies() []domain.StrategyName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.factories)
	slices.Sort(names)
	return names
}
