package benchmark

import (
	"github.com/driftlog/drift/core"
	"github.com/driftlog/drift/drain"
)

type noopDrain struct{}

func newNoopDrain() drain.Drain {
	return noopDrain{}
}

func (noopDrain) Log(rec *core.Record, _ core.Fields) error {
	_ = len(rec.Message)
	return nil
}

func (noopDrain) Close() error {
	return nil
}
