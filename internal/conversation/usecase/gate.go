package usecase

import "sync"

// subjectGate serializes operations per subject id. Opens take the slot
// blocking; sends take it non-blocking so a second turn is rejected rather
// than interleaved.
type subjectGate struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newSubjectGate() *subjectGate {
	return &subjectGate{slots: make(map[string]chan struct{})}
}

func (g *subjectGate) slot(subjectID string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.slots[subjectID]
	if !ok {
		ch = make(chan struct{}, 1)
		g.slots[subjectID] = ch
	}
	return ch
}

func (g *subjectGate) lock(subjectID string) {
	g.slot(subjectID) <- struct{}{}
}

func (g *subjectGate) tryLock(subjectID string) bool {
	select {
	case g.slot(subjectID) <- struct{}{}:
		return true
	default:
		return false
	}
}

func (g *subjectGate) unlock(subjectID string) {
	<-g.slot(subjectID)
}

func (g *subjectGate) busy(subjectID string) bool {
	return len(g.slot(subjectID)) == 1
}
