package notifier

// TextNotifier delivers a short user-facing message, e.g. a dashboard toast.
type TextNotifier interface {
	SendText(text string) error
}

// Func adapts a plain function to TextNotifier.
type Func func(text string) error

func (f Func) SendText(text string) error {
	if f == nil {
		return nil
	}
	return f(text)
}

// Discard drops every message.
var Discard TextNotifier = Func(func(string) error { return nil })
