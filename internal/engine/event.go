package engine

// EventWithArg is a multi-cast event carrying one argument.
// Listeners run in subscription order on the caller's goroutine.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
