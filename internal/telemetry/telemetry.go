package telemetry

import (
	"fmt"
)

// API is how pipeline stages surface problems that should not stop a run,
// such as a progress line that could not be written.
//
// note: fault injection point
type API interface {
	// ReportWarning reports a non-fatal failure that may be subject to investigation.
	ReportWarning(id string, params ...any)

	// ReportCount reports how many items a stage produced.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace, so "extract" + "rows"
// becomes "extract:rows".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s:%s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s:%s", s.namespace, id), count)
}
