package terminal

import "testing"

func TestIsInteractiveWithoutTTY(t *testing.T) {
	// Test processes run with piped stdio, so this must report false
	// rather than blocking or panicking.
	if IsInteractive() {
		t.Skip("running under a real terminal")
	}
}
