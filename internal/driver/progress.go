package driver

// Status captures a file's state within a directory parse.
type Status string

const (
	// StatusWorking indicates the file is being lexed and parsed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished without error diagnostics.
	StatusDone Status = "done"
	// StatusError indicates the file produced error diagnostics.
	StatusError Status = "error"
)

// Event reports per-file progress during ParseDir.
type Event struct {
	Path   string
	Status Status
	Cached bool
}

// ProgressSink consumes progress events. ParseDir calls OnEvent from
// multiple goroutines, so sinks must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emitProgress(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
