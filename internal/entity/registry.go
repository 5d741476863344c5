package entity

// Registry is the ordered set of agents. Its order never changes once
// built, so index-based round-robin selection is stable.
type Registry struct {
	agents []*Agent
	byID   map[string]*Agent
}

// NewRegistry creates a registry holding agents in the given order.
func NewRegistry(agents ...*Agent) *Registry {
	r := &Registry{
		agents: agents,
		byID:   make(map[string]*Agent, len(agents)),
	}
	for _, a := range agents {
		r.byID[a.ID] = a
	}
	return r
}

// Len returns the number of agents.
func (r *Registry) Len() int { return len(r.agents) }

// At returns the agent at index i.
func (r *Registry) At(i int) *Agent { return r.agents[i] }

// All returns the agents in insertion order. Callers must not modify the slice.
func (r *Registry) All() []*Agent { return r.agents }

// Get returns the agent with the given id, or nil.
func (r *Registry) Get(id string) *Agent { return r.byID[id] }
