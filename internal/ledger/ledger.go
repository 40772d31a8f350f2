// internal/ledger/ledger.go
package ledger

import "go-tower-grid/internal/event"

// Ledger tracks the resource economy of a level:
// available = starting + harvested - spent.
//
// The ledger never clamps. Refusing a placement that would drive the
// available count below zero is the placement controller's job.
type Ledger struct {
	dispatcher *event.Dispatcher
	starting   int
	harvested  int
	spent      int
}

// New creates a ledger and subscribes it to resource tile updates.
func New(dispatcher *event.Dispatcher) *Ledger {
	l := &Ledger{dispatcher: dispatcher}
	dispatcher.Subscribe(event.ResourceTilesChanged, l)
	return l
}

// OnEvent takes the harvested count from the grid.
func (l *Ledger) OnEvent(e event.Event) {
	if e.Type != event.ResourceTilesChanged {
		return
	}
	if count, ok := e.Data.(int); ok {
		l.SetHarvested(count)
	}
}

// SetStarting sets the level's starting resources. Called once at level load.
func (l *Ledger) SetStarting(n int) {
	l.starting = n
	l.Announce()
}

// SetHarvested replaces the harvested count.
func (l *Ledger) SetHarvested(n int) {
	l.harvested = n
	l.Announce()
}

// Spend records the cost of a placed building.
func (l *Ledger) Spend(cost int) {
	l.spent += cost
	l.Announce()
}

// Refund returns the cost of a removed building.
func (l *Ledger) Refund(cost int) {
	l.spent -= cost
	l.Announce()
}

// Available returns the resources that can still be spent.
func (l *Ledger) Available() int {
	return l.starting + l.harvested - l.spent
}

func (l *Ledger) Starting() int  { return l.starting }
func (l *Ledger) Harvested() int { return l.harvested }
func (l *Ledger) Spent() int     { return l.spent }

// Announce emits the current available count.
func (l *Ledger) Announce() {
	l.dispatcher.Dispatch(event.Event{Type: event.AvailableResourcesChanged, Data: l.Available()})
}
