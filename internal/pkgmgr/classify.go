package pkgmgr

import "strings"

// Stderr phrases shared across package-manager families. Matched
// case-insensitively against the combined output.
var (
	commonPermissionPatterns = []string{
		"permission denied",
		"are you root",
		"root privileges",
		"operation not permitted",
		"superuser privilege",
	}
	commonNetworkPatterns = []string{
		"could not resolve",
		"temporary failure in name resolution",
		"timed out",
		"network is unreachable",
		"connection refused",
		"could not connect",
		"failed to fetch",
		"no route to host",
	}
)

// classifier maps one family's exit codes and output phrases to a Status.
// Exit-code entries are checked before phrase matching; unmatched non-zero
// exits fall through to StatusFailed with the raw code preserved.
type classifier struct {
	notFoundExits      []int
	permissionExits    []int
	notFoundPatterns   []string
	permissionPatterns []string
	networkPatterns    []string
}

func (c classifier) classify(raw execResult) Result {
	res := Result{
		ExitCode:   raw.exitCode,
		StdoutTail: tail(raw.stdout, tailLimit),
		StderrTail: tail(raw.stderr, tailLimit),
		TimedOut:   raw.timedOut,
	}
	if raw.timedOut {
		res.Status = StatusNetworkFailure
		return res
	}
	if raw.startErr != nil {
		// The family's executable is missing or unrunnable on this host.
		res.Status = StatusUnsupported
		res.StderrTail = raw.startErr.Error()
		return res
	}
	if raw.exitCode == 0 {
		res.Status = StatusSuccess
		return res
	}

	combined := strings.ToLower(raw.stderr + "\n" + raw.stdout)
	switch {
	case containsInt(c.notFoundExits, raw.exitCode):
		res.Status = StatusNotFound
	case containsInt(c.permissionExits, raw.exitCode):
		res.Status = StatusPermissionDenied
	case matchesAny(combined, c.permissionPatterns) || matchesAny(combined, commonPermissionPatterns):
		res.Status = StatusPermissionDenied
	case matchesAny(combined, c.notFoundPatterns):
		res.Status = StatusNotFound
	case matchesAny(combined, c.networkPatterns) || matchesAny(combined, commonNetworkPatterns):
		res.Status = StatusNetworkFailure
	default:
		res.Status = StatusFailed
	}
	return res
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func matchesAny(haystack string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}
