package main

import "testing"

// TestRunMainConfigError verifies invalid arguments exit with code 2 before the terminal opens
func TestRunMainConfigError(t *testing.T) {
	if code := runMain([]string{"-duration", "7"}); code != 2 {
		t.Errorf("Expected exit code 2 for an off-step duration, got %d", code)
	}
	if code := runMain([]string{"-level", "abc"}); code != 2 {
		t.Errorf("Expected exit code 2 for a malformed flag, got %d", code)
	}
}

// TestRunMainHelp verifies -h exits cleanly
func TestRunMainHelp(t *testing.T) {
	if code := runMain([]string{"-h"}); code != 0 {
		t.Errorf("Expected exit code 0 for -h, got %d", code)
	}
}
