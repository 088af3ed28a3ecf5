package intern

import (
	"fmt"
	"sync"
)

// ID identifies a string previously interned into a Pool. The zero ID is
// reserved and never returned by Intern; it is safe to use as a "not yet
// assigned" sentinel in caller-owned structures.
type ID uint32

// Pool is a growable, append-only string table. The forward table (ID to
// string) is guarded by a RWMutex since lookups by ID are frequent and
// never contend with each other; the reverse table (string to ID) is
// guarded by its own Mutex since inserts are comparatively rare and the
// two tables are never walked together under one lock.
//
// The zero value is a ready-to-use, empty Pool.
type Pool struct {
	muValues sync.RWMutex
	values   []string

	muRev sync.Mutex
	rev   map[string]ID
}

// NewPool returns an empty, ready-to-use Pool.
func NewPool() *Pool {
	return &Pool{rev: make(map[string]ID)}
}

// Intern returns the ID for s, assigning it a fresh one on first sight.
// Concurrent calls with the same s are guaranteed to observe the same ID.
func (p *Pool) Intern(s string) ID {
	p.muRev.Lock()
	if id, ok := p.rev[s]; ok {
		p.muRev.Unlock()
		return id
	}

	p.muValues.Lock()
	p.values = append(p.values, s)
	id := ID(len(p.values))
	p.muValues.Unlock()

	if p.rev == nil {
		p.rev = make(map[string]ID)
	}
	p.rev[s] = id
	p.muRev.Unlock()

	return id
}

// Lookup returns the string previously interned under id. It panics if id
// was never returned by Intern on this Pool, since a caller holding an ID
// it did not itself obtain from this pool is a programming error.
func (p *Pool) Lookup(id ID) string {
	p.muValues.RLock()
	defer p.muValues.RUnlock()

	if id == 0 || int(id) > len(p.values) {
		panic(fmt.Sprintf("intern: invalid ID %d for pool of size %d", id, len(p.values)))
	}
	return p.values[id-1]
}

// Len reports how many distinct strings have been interned.
func (p *Pool) Len() int {
	p.muValues.RLock()
	defer p.muValues.RUnlock()
	return len(p.values)
}
