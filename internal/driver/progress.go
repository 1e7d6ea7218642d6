package driver

// Stage names the part of the scan an Event refers to.
type Stage uint8

const (
	StageDiscover Stage = iota
	StageLoad
	StageScan
)

func (s Stage) String() string {
	switch s {
	case StageDiscover:
		return "discover"
	case StageLoad:
		return "load"
	case StageScan:
		return "scan"
	}
	return "unknown"
}

// Status reports where a file is in its stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusCached
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusCached:
		return "cached"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Event describes one progress step. File is empty for whole-run events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink receives events; it is called from worker goroutines.
type ProgressSink func(Event)

func (p ProgressSink) emit(file string, stage Stage, status Status) {
	if p != nil {
		p(Event{File: file, Stage: stage, Status: status})
	}
}
