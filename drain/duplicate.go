package drain

import (
	"go.uber.org/multierr"

	"github.com/driftlog/drift/core"
)

// Duplicate fans a record out to every child drain. Every child is
// invoked unconditionally regardless of the others' outcomes, so one
// sink's failure never suppresses delivery to another. Errors are
// aggregated; multierr.Errors unpacks the individual failures.
type Duplicate struct {
	drains []Drain
}

// NewDuplicate creates a fan-out over the given drains.
func NewDuplicate(drains ...Drain) *Duplicate {
	return &Duplicate{drains: drains}
}

// Log forwards the same record and field view to every child.
func (d *Duplicate) Log(rec *core.Record, fields core.Fields) error {
	var err error
	for _, child := range d.drains {
		err = multierr.Append(err, child.Log(rec, fields))
	}
	return err
}

// Close closes every child, aggregating failures.
func (d *Duplicate) Close() error {
	var err error
	for _, child := range d.drains {
		err = multierr.Append(err, child.Close())
	}
	return err
}
