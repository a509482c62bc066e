package checkout

import "log/slog"

// Tracker receives checkout analytics events ("checkout", "purchase",
// "stalled").
type Tracker interface {
	Event(name string, fields map[string]string)
}

// TrackerFunc adapts a function to the Tracker interface.
type TrackerFunc func(name string, fields map[string]string)

func (f TrackerFunc) Event(name string, fields map[string]string) {
	f(name, fields)
}

type slogTracker struct{}

func (slogTracker) Event(name string, fields map[string]string) {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	slog.Info("checkout: "+name, args...)
}
