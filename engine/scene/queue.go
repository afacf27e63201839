package scene

import (
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
)

// pendingSet is an insertion-ordered set of pending descriptors keyed by
// identity. Cancelled entries leave a stale identity in the order slice;
// take skips identities that are no longer in the entries map.
type pendingSet struct {
	order   []uint64
	entries map[uint64]drawable.Descriptor
}

func newPendingSet() pendingSet {
	return pendingSet{entries: make(map[uint64]drawable.Descriptor)}
}

// put inserts or refreshes a descriptor. Identities already pending keep
// their queue position.
func (p *pendingSet) put(desc drawable.Descriptor) {
	id := desc.ID()
	if _, ok := p.entries[id]; !ok {
		p.order = append(p.order, id)
	}
	p.entries[id] = desc
}

// cancel drops a pending identity. Returns true if it was pending.
func (p *pendingSet) cancel(id uint64) bool {
	if _, ok := p.entries[id]; !ok {
		return false
	}
	delete(p.entries, id)
	return true
}

// take pops the oldest pending descriptor, skipping cancelled entries.
func (p *pendingSet) take() (drawable.Descriptor, bool) {
	for len(p.order) > 0 {
		id := p.order[0]
		p.order = p.order[1:]
		if desc, ok := p.entries[id]; ok {
			delete(p.entries, id)
			if len(p.entries) == 0 {
				p.order = p.order[:0]
			}
			return desc, true
		}
	}
	return nil, false
}

func (p *pendingSet) len() int {
	return len(p.entries)
}

// commitQueue buffers pending add/remove requests so interactive callers
// never pay for immediate GPU resource churn. An identity is pending in at
// most one direction at a time: enqueuing the opposite of a pending
// operation cancels the pending one instead of queuing both (net no-op).
type commitQueue struct {
	additions pendingSet
	removals  pendingSet
}

func newCommitQueue() commitQueue {
	return commitQueue{
		additions: newPendingSet(),
		removals:  newPendingSet(),
	}
}

// enqueueAdd marks the descriptor pending-addition, unless its identity is
// pending-removal, in which case the removal is cancelled and nothing is
// queued.
func (q *commitQueue) enqueueAdd(desc drawable.Descriptor) {
	if q.removals.cancel(desc.ID()) {
		return
	}
	q.additions.put(desc)
}

// enqueueRemove marks the descriptor pending-removal, unless its identity is
// pending-addition, in which case the addition is cancelled and nothing is
// queued.
func (q *commitQueue) enqueueRemove(desc drawable.Descriptor) {
	if q.additions.cancel(desc.ID()) {
		return
	}
	q.removals.put(desc)
}

// takeAddition pops one pending addition in insertion order.
func (q *commitQueue) takeAddition() (drawable.Descriptor, bool) {
	return q.additions.take()
}

// takeRemoval pops one pending removal in insertion order.
func (q *commitQueue) takeRemoval() (drawable.Descriptor, bool) {
	return q.removals.take()
}

// empty reports whether no operations are pending in either direction.
func (q *commitQueue) empty() bool {
	return q.additions.len() == 0 && q.removals.len() == 0
}

// pending returns the number of queued additions and removals.
func (q *commitQueue) pending() (adds, removes int) {
	return q.additions.len(), q.removals.len()
}
