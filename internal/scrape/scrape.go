// Package scrape defines the source adapter contract and the registry that
// builds the set of enabled sources for a run.
package scrape

import (
	"context"
	"fmt"

	"github.com/jonathan/job-scout/internal/types"
)

// Source is a job-listing source. One implementation exists per supported
// site; each maps its own payload into the canonical listing shape.
type Source interface {
	// Name is the stable identifier used in config and logs.
	Name() string
	// Fetch returns the listings the source found for the query. An empty
	// result with a nil error is a valid outcome. Adapters may return the
	// listings collected so far together with a non-nil error.
	Fetch(ctx context.Context, q types.Query) ([]types.Listing, error)
}

// TitleAgnostic is implemented by sources whose results do not depend on the
// queried title. The pipeline queries them once per run instead of once per
// title.
type TitleAgnostic interface {
	TitleAgnostic() bool
}

// UnavailableError marks a source failure. The pipeline treats it as
// non-fatal: the source's results are kept partial or empty, the error is
// logged, and the run continues.
type UnavailableError struct {
	Source string
	Cause  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
