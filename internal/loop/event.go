package loop

// Key is an SDL keycode.
type Key int32

const (
	KeyEscape Key = 0x1B
	KeyJ      Key = 'j'
)

// Event is one input event taken from the windowing layer. A nil Event
// means nothing was pending.
type Event interface {
	isEvent()
}

// QuitEvent is sent when the window is closed or the process is asked to quit.
type QuitEvent struct{}

// KeyDownEvent is a key press.
type KeyDownEvent struct {
	Key Key
}

// OtherEvent is any event the controller does not dispatch on.
type OtherEvent struct{}

func (QuitEvent) isEvent()    {}
func (KeyDownEvent) isEvent() {}
func (OtherEvent) isEvent()   {}

// EventSource is polled once per iteration and must never block.
type EventSource interface {
	PollEvent() Event
}

// Renderer is the drawing surface cleared after every dispatched event.
type Renderer interface {
	SetDrawColor(r, g, b, a uint8)
	Clear()
	Present()
}
