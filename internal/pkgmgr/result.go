package pkgmgr

// Status is the normalized outcome of one adapter operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusNotFound
	StatusPermissionDenied
	StatusNetworkFailure
	StatusUnsupported
	StatusFailed
)

// String returns the status name used in reports and failure output.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusNotFound:
		return "NotFound"
	case StatusPermissionDenied:
		return "PermissionDenied"
	case StatusNetworkFailure:
		return "NetworkFailure"
	case StatusUnsupported:
		return "Unsupported"
	case StatusFailed:
		return "Failed"
	}
	return "Unknown"
}

// Result is the normalized outcome produced by an adapter. Adapters never
// propagate execution failures as errors; every outcome, including a
// timeout, surfaces here. Never mutated after creation.
type Result struct {
	Status   Status
	ExitCode int
	// StdoutTail and StderrTail hold the final bytes of each stream,
	// bounded by tailLimit. Full buffers are discarded.
	StdoutTail string
	StderrTail string
	// TimedOut distinguishes a killed-on-deadline invocation from other
	// network failures so refresh callers can retry.
	TimedOut bool
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Status == StatusSuccess }

// Upgrade is one available package upgrade reported by ListUpgrades.
// Version fields are empty when the package manager does not report them.
type Upgrade struct {
	Name       string
	OldVersion string
	NewVersion string
}

// String renders "name (new) -> (old)", omitting missing versions.
func (u Upgrade) String() string {
	s := u.Name
	if u.NewVersion != "" {
		s += " (" + u.NewVersion + ")"
		if u.OldVersion != "" {
			s += " -> (" + u.OldVersion + ")"
		}
	}
	return s
}
