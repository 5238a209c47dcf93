package buildpipeline

import "time"

// Stage is a step of a directory build.
type Stage uint8

const (
	StageDiscover Stage = iota // поиск входных файлов
	StageCompile               // parse, transform, codegen одного модуля
	StageWrite                 // запись результата в out_dir
	stageCount
)

var stageWords = [stageCount]struct{ name, doing, done string }{
	StageDiscover: {"discover", "discovering", "discovered"},
	StageCompile:  {"compile", "compiling", "compiled"},
	StageWrite:    {"write", "writing", "written"},
}

func (s Stage) String() string {
	if s < stageCount {
		return stageWords[s].name
	}
	return "unknown"
}

// Doing is the progressive form shown while the stage runs.
func (s Stage) Doing() string {
	if s < stageCount {
		return stageWords[s].doing
	}
	return ""
}

// Done is the past form used in timing summaries.
func (s Stage) Done() string {
	if s < stageCount {
		return stageWords[s].done
	}
	return ""
}

// Status is the state of a file (or of the whole build) within a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusCached // результат взят из дискового кэша
	StatusDone
	StatusError
)

// Event reports progress of one file, or of the build when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Label is the short word a progress view shows for the event.
func (ev Event) Label() string {
	switch ev.Status {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return ev.Stage.Doing()
	case StatusCached:
		return "cached"
	case StatusError:
		return "error"
	}
	if ev.Stage == StageWrite {
		return "written"
	}
	return "done"
}

// ProgressSink consumes progress events. Build calls it from worker
// goroutines, so implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds the wall time of each finished stage.
type Timings struct {
	dur [stageCount]time.Duration
	set [stageCount]bool
}

func (t *Timings) Set(stage Stage, d time.Duration) {
	if stage < stageCount {
		t.dur[stage], t.set[stage] = d, true
	}
}

func (t Timings) Has(stage Stage) bool {
	return stage < stageCount && t.set[stage]
}

func (t Timings) Duration(stage Stage) time.Duration {
	if !t.Has(stage) {
		return 0
	}
	return t.dur[stage]
}

// Sum adds the durations of stages; unrecorded stages count as zero.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, s := range stages {
		total += t.Duration(s)
	}
	return total
}

// Stages lists the recorded stages in pipeline order.
func (t Timings) Stages() []Stage {
	var out []Stage
	for s := range stageCount {
		if t.set[s] {
			out = append(out, s)
		}
	}
	return out
}
