package pkgmgr

import (
	"errors"
	"testing"
)

func TestClassifyStatuses(t *testing.T) {
	cl := classifier{
		notFoundExits:      []int{104},
		permissionExits:    []int{5},
		notFoundPatterns:   []string{"unable to locate package"},
		permissionPatterns: []string{"could not open lock file"},
		networkPatterns:    []string{"failed to fetch"},
	}

	cases := []struct {
		name string
		raw  execResult
		want Status
	}{
		{
			name: "exit zero",
			raw:  execResult{exitCode: 0},
			want: StatusSuccess,
		},
		{
			name: "timeout wins over everything",
			raw:  execResult{exitCode: 0, timedOut: true},
			want: StatusNetworkFailure,
		},
		{
			name: "missing executable",
			raw:  execResult{exitCode: -1, startErr: errors.New("executable file not found")},
			want: StatusUnsupported,
		},
		{
			name: "not-found exit code",
			raw:  execResult{exitCode: 104},
			want: StatusNotFound,
		},
		{
			name: "permission exit code",
			raw:  execResult{exitCode: 5},
			want: StatusPermissionDenied,
		},
		{
			name: "not-found phrase",
			raw:  execResult{exitCode: 100, stderr: "E: Unable to locate package foo"},
			want: StatusNotFound,
		},
		{
			name: "family permission phrase",
			raw:  execResult{exitCode: 100, stderr: "E: Could not open lock file /var/lib/dpkg/lock"},
			want: StatusPermissionDenied,
		},
		{
			name: "common permission phrase",
			raw:  execResult{exitCode: 1, stderr: "error: Permission denied"},
			want: StatusPermissionDenied,
		},
		{
			name: "network phrase",
			raw:  execResult{exitCode: 100, stderr: "Err: Failed to fetch http://mirror"},
			want: StatusNetworkFailure,
		},
		{
			name: "common network phrase in stdout",
			raw:  execResult{exitCode: 1, stdout: "Could not resolve host: mirror.example"},
			want: StatusNetworkFailure,
		},
		{
			name: "unmatched non-zero exit",
			raw:  execResult{exitCode: 42, stderr: "something else entirely"},
			want: StatusFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := cl.classify(tc.raw)
			if res.Status != tc.want {
				t.Errorf("Status = %s, want %s", res.Status, tc.want)
			}
			if !tc.raw.timedOut && tc.raw.startErr == nil && res.ExitCode != tc.raw.exitCode {
				t.Errorf("ExitCode = %d, want %d", res.ExitCode, tc.raw.exitCode)
			}
		})
	}
}

func TestClassifyBoundsTails(t *testing.T) {
	long := make([]byte, tailLimit*3)
	for i := range long {
		long[i] = 'x'
	}
	res := classifier{}.classify(execResult{exitCode: 1, stdout: string(long), stderr: string(long)})
	if len(res.StdoutTail) != tailLimit {
		t.Errorf("StdoutTail length = %d, want %d", len(res.StdoutTail), tailLimit)
	}
	if len(res.StderrTail) != tailLimit {
		t.Errorf("StderrTail length = %d, want %d", len(res.StderrTail), tailLimit)
	}
}

func TestClassifyTimeoutFlagPreserved(t *testing.T) {
	res := classifier{}.classify(execResult{exitCode: -1, timedOut: true, stderr: "partial"})
	if !res.TimedOut {
		t.Error("TimedOut = false")
	}
	if res.Status != StatusNetworkFailure {
		t.Errorf("Status = %s", res.Status)
	}
}
