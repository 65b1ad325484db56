// Package genpipeline names the stages a single .edl file passes through
// during "edlgen generate" and the event shape the driver publishes as it
// runs them, keeping the progress UI (internal/ui) backend-agnostic.
package genpipeline

// Stage is a high-level phase of generating one file.
type Stage string

const (
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StagePlan     Stage = "plan"
	StageWrite    Stage = "write"
	StageCacheHit Stage = "cache"
)

// Status captures progress within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file's generation run.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// Sink consumes progress events. The driver publishes to a Sink; the
// interactive UI and the quiet/plain path both implement it.
type Sink interface {
	OnEvent(Event)
}

// ChanSink adapts a channel of Event to the Sink interface, closing the
// channel is the caller's responsibility once the fan-out completes.
type ChanSink chan<- Event

func (s ChanSink) OnEvent(ev Event) { s <- ev }

// NopSink discards every event, used for --quiet runs.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
