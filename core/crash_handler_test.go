package core

import (
	"os"
	"testing"
	"time"
)

func TestHandleCrashNil(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected no cleanup for a nil panic value")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	cleaned := make(chan struct{}, 1)
	exited := make(chan int, 1)
	SetCrashCleanup(func() { cleaned <- struct{}{} })
	crashExit = func(code int) { exited <- code }
	defer func() {
		SetCrashCleanup(nil)
		crashExit = os.Exit
	}()

	Go(func() { panic("boom") })

	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected crash handler to run")
	}
	select {
	case <-cleaned:
	default:
		t.Error("Expected cleanup to run before exit")
	}
}
