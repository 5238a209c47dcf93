package driver

import "time"

// FileStatus is the per-file state reported by CompileFiles.
type FileStatus uint8

const (
	FileStarted FileStatus = iota
	FileCompiled
	FileCached // из дискового кэша, компиляции не было
	FileFailed // ошибки чтения или диагностики уровня error
)

var fileStatusNames = [...]string{"started", "compiled", "cached", "failed"}

func (s FileStatus) String() string {
	if int(s) < len(fileStatusNames) {
		return fileStatusNames[s]
	}
	return "unknown"
}

// FileEvent marks a boundary in the compilation of File. Every file gets
// FileStarted followed by exactly one of the other statuses.
type FileEvent struct {
	File    string
	Status  FileStatus
	Elapsed time.Duration
	Err     error
}

// Observer is called from worker goroutines and must be safe for
// concurrent use.
type Observer func(FileEvent)
