package sales

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

const (
	SimpleRevenueFormula = "simple"
	ProfitTieredFormula  = "profit_tiered"
)

// Registry manages named revenue and bonus strategies
type Registry interface {
	// RegisterRevenue adds a named revenue strategy
	RegisterRevenue(name string, fn RevenueFunc) error
	// RegisterBonus adds a named bonus strategy
	RegisterBonus(name string, fn BonusFunc) error
	// Config resolves both strategies by name
	Config(revenue, bonus string) (*Config, error)
	ListRevenue() []string
	ListBonus() []string
}

type registry struct {
	mu      sync.RWMutex
	revenue map[string]RevenueFunc
	bonus   map[string]BonusFunc
}

// NewRegistry creates an empty formula registry
func NewRegistry() Registry {
	return &registry{
		revenue: make(map[string]RevenueFunc),
		bonus:   make(map[string]BonusFunc),
	}
}

// DefaultRegistry returns a registry holding the built-in formulas
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.RegisterRevenue(SimpleRevenueFormula, SimpleRevenue)
	_ = r.RegisterBonus(ProfitTieredFormula, BonusByProfit)
	return r
}

func (r *registry) RegisterRevenue(name string, fn RevenueFunc) error {
	if name == "" {
		return fmt.Errorf("formula name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("revenue function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.revenue[name]; exists {
		return fmt.Errorf("revenue formula %q is already registered", name)
	}
	r.revenue[name] = fn
	return nil
}

func (r *registry) RegisterBonus(name string, fn BonusFunc) error {
	if name == "" {
		return fmt.Errorf("formula name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("bonus function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bonus[name]; exists {
		return fmt.Errorf("bonus formula %q is already registered", name)
	}
	r.bonus[name] = fn
	return nil
}

func (r *registry) Config(revenue, bonus string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	revenueFn, ok := r.revenue[revenue]
	if !ok {
		return nil, &MissingConfigError{Reason: fmt.Sprintf("revenue formula %q is not registered", revenue)}
	}
	bonusFn, ok := r.bonus[bonus]
	if !ok {
		return nil, &MissingConfigError{Reason: fmt.Sprintf("bonus formula %q is not registered", bonus)}
	}

	return &Config{Revenue: revenueFn, Bonus: bonusFn}, nil
}

func (r *registry) ListRevenue() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.revenue))
}

func (r *registry) ListBonus() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.bonus))
}
