package admin

// Notifier receives one-line, user-facing notices from the control layer:
// session changes, retry progress, and surfaced request failures.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) { f(message) }

// discardNotifier drops every notice. Used when no notifier is configured.
type discardNotifier struct{}

func (discardNotifier) Notify(string) {}
