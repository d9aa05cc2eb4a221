// Package config holds the kernel's between-steps configuration:
// YAML-loadable rule specs, scheduling policies, and the runtime parameters
// that tune (but never change the semantics of) the step dispatcher.
// The mutex-guarded struct with typed Get*/Set accessors follows the
// teacher's config/parameters.go RuntimeParameters; the field set is
// entirely new, scoped to the CA kernel instead of a swarm node.
package config

import (
	"fmt"
	"sync"
)

// EngineParameters holds tunable, non-semantic kernel knobs: how many
// tiles the step dispatcher uses, how fast the run loop ticks, and
// seeding defaults. None of these affect a step's output, only its
// pacing/parallelism (§5's scheduling freedom).
type EngineParameters struct {
	mu sync.RWMutex

	WorkerCount      int     `json:"worker_count" yaml:"worker_count"`
	TickMilliseconds int     `json:"tick_milliseconds" yaml:"tick_milliseconds"`
	SeedDensity      float64 `json:"seed_density" yaml:"seed_density"`
	SeedIncludeDecay bool    `json:"seed_include_decay" yaml:"seed_include_decay"`
}

// Defaults returns sensible defaults: one tile per logical CPU (0
// means "let the engine decide"), a 100ms tick, and a 15% random seed
// density with decay seeding enabled.
func Defaults() *EngineParameters {
	return &EngineParameters{
		WorkerCount:      0,
		TickMilliseconds: 100,
		SeedDensity:      0.15,
		SeedIncludeDecay: true,
	}
}

// Get returns a parameter value by name (thread-safe).
func (p *EngineParameters) Get(param string) interface{} {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch param {
	case "worker_count":
		return p.WorkerCount
	case "tick_milliseconds":
		return p.TickMilliseconds
	case "seed_density":
		return p.SeedDensity
	case "seed_include_decay":
		return p.SeedIncludeDecay
	default:
		return nil
	}
}

// Set updates a parameter value by name (thread-safe); reports whether
// the name was recognized and the value's type matched.
func (p *EngineParameters) Set(param string, value interface{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch param {
	case "worker_count":
		if v, ok := value.(int); ok {
			p.WorkerCount = v
			return true
		}
	case "tick_milliseconds":
		if v, ok := value.(int); ok {
			p.TickMilliseconds = v
			return true
		}
	case "seed_density":
		if v, ok := value.(float64); ok {
			p.SeedDensity = v
			return true
		}
	case "seed_include_decay":
		if v, ok := value.(bool); ok {
			p.SeedIncludeDecay = v
			return true
		}
	}
	return false
}

// GetFloat64 returns a float64 parameter with a default fallback.
func (p *EngineParameters) GetFloat64(param string, defaultValue float64) float64 {
	if v := p.Get(param); v != nil {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return defaultValue
}

// GetInt returns an int parameter with a default fallback.
func (p *EngineParameters) GetInt(param string, defaultValue int) int {
	if v := p.Get(param); v != nil {
		if i, ok := v.(int); ok {
			return i
		}
	}
	return defaultValue
}

// UpdateBatch applies multiple parameters, one Set call each, and
// reports which ones applied. The batch is not applied under a single
// lock: a concurrent reader can observe some entries updated and
// others not yet.
func (p *EngineParameters) UpdateBatch(updates map[string]interface{}) map[string]bool {
	results := make(map[string]bool, len(updates))
	for name, value := range updates {
		results[name] = p.Set(name, value)
	}
	return results
}

// Clone returns a copy of the parameters.
func (p *EngineParameters) Clone() *EngineParameters {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &EngineParameters{
		WorkerCount:      p.WorkerCount,
		TickMilliseconds: p.TickMilliseconds,
		SeedDensity:      p.SeedDensity,
		SeedIncludeDecay: p.SeedIncludeDecay,
	}
}

// Validate checks that the parameters are within sane bounds.
func (p *EngineParameters) Validate() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.WorkerCount < 0 {
		return fmt.Errorf("config: worker_count must be >= 0, got %d", p.WorkerCount)
	}
	if p.TickMilliseconds <= 0 {
		return fmt.Errorf("config: tick_milliseconds must be positive, got %d", p.TickMilliseconds)
	}
	if p.SeedDensity < 0 || p.SeedDensity > 1 {
		return fmt.Errorf("config: seed_density must be in [0,1], got %v", p.SeedDensity)
	}
	return nil
}
