package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "explicit yes", input: "y\n", defaultYes: false, want: true},
		{name: "explicit yes word", input: "yes\n", defaultYes: false, want: true},
		{name: "explicit no", input: "n\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, want: false},
		{name: "case insensitive", input: "Y\n", defaultYes: false, want: true},
		{name: "retry after garbage", input: "maybe\ny\n", defaultYes: false, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptYesNo(strings.NewReader(tc.input), &out, "Proceed?", tc.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPromptYesNoDefaultMarker(t *testing.T) {
	var out bytes.Buffer
	_, err := promptYesNo(strings.NewReader("y\n"), &out, "Proceed?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Proceed? [Y/n]: ")

	out.Reset()
	_, err = promptYesNo(strings.NewReader("y\n"), &out, "Proceed?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Proceed? [y/N]: ")
}

func TestPromptYesNoEOFIsDecline(t *testing.T) {
	var out bytes.Buffer
	got, err := promptYesNo(strings.NewReader(""), &out, "Proceed?", true)
	require.NoError(t, err)
	assert.False(t, got, "EOF must never be taken as consent")
}

func TestPromptYesNoRetryMessage(t *testing.T) {
	var out bytes.Buffer
	got, err := promptYesNo(strings.NewReader("whatever\nn\n"), &out, "Proceed?", true)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "Please answer 'y' or 'n'.")
}

func TestPromptYesNoGarbageAtEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := promptYesNo(strings.NewReader("maybe"), &out, "Proceed?", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maybe")
}
