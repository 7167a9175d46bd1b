package tui

import "testing"

// The quit keys are advertised in the play command's help text; keep the
// binding and the docs in agreement.
func TestDefaultKeyMapQuitKeys(t *testing.T) {
	keys := DefaultKeyMap().Quit.Keys()

	want := map[string]bool{"q": false, "esc": false, "ctrl+c": false}
	for _, k := range keys {
		if _, ok := want[k]; !ok {
			t.Errorf("unexpected quit key %q", k)
			continue
		}
		want[k] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("quit binding missing key %q", k)
		}
	}
}
