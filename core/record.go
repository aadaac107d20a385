package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Record describes one log event: when it happened, how severe it is,
// what it says, and where it was emitted. A *Record handed to a drain
// is valid only for the duration of the Log call; a drain that defers
// processing (the async combinator) must copy the value.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
}

// Snapshot returns the read-only context copy handed to lazy field
// computations.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{Time: r.Time, Level: r.Level, Message: r.Message}
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// recordPool recycles Record objects to keep the hot path allocation-free
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Caller = CallerInfo{}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Caller = CallerInfo{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
