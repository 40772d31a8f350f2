// internal/event/event.go
package event

// EventType - тип события
type EventType string

const (
	// GridStateChanged fires after the derived tile sets were updated.
	GridStateChanged EventType = "GridStateChanged"
	// ResourceTilesChanged carries the collected resource tile count (int).
	ResourceTilesChanged EventType = "ResourceTilesChanged"
	// AvailableResourcesChanged carries the ledger's available count (int).
	AvailableResourcesChanged EventType = "AvailableResourcesChanged"
	// BuildingPlaced carries *component.Building.
	BuildingPlaced EventType = "BuildingPlaced"
	// BuildingDestroyed carries *component.Building.
	BuildingDestroyed EventType = "BuildingDestroyed"
	// BuildingTypeSelected carries *defs.BuildingDefinition.
	BuildingTypeSelected EventType = "BuildingTypeSelected"
	// LevelCompleted carries the level name (string).
	LevelCompleted EventType = "LevelCompleted"
)

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(e Event) { l.fn(e) }

// Func wraps a plain function as a Listener. Keep the returned value to
// unsubscribe later.
func Func(fn func(Event)) Listener {
	return &funcListener{fn: fn}
}

// Dispatcher - диспетчер событий. Доставка синхронная, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch - отправка события всем подписчикам. Подписчики, добавленные во
// время доставки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}

// Clear drops every subscription. Called when a level is unloaded.
func (d *Dispatcher) Clear() {
	d.listeners = make(map[EventType][]Listener)
}
