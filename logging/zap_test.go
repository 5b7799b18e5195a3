package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"diagkit/scope"
)

func TestZapChannel_ForwardsAcceptedEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ch := NewZapChannel(zap.New(core), NewFilter(V(Warning), scope.New("Net")))

	ch.Send(NewEvent(Error, scope.New("Net|Socket"), "reset by peer"))
	ch.Send(NewEvent(Info, scope.New("Net|Socket"), "below threshold"))
	ch.Send(NewEvent(Critical, scope.New("Disk"), "wrong scope"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("zap received %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Message != "reset by peer" {
		t.Errorf("message = %q", got.Message)
	}
	fields := got.ContextMap()
	if fields["context"] != "Net|Socket" {
		t.Errorf("context field = %v", fields["context"])
	}
	if fields["severity"] != "error" {
		t.Errorf("severity field = %v", fields["severity"])
	}
}

func TestZapChannel_CriticalStaysInProcess(t *testing.T) {
	// Critical and Fatal must not reach zap's own fatal/panic levels.
	core, logs := observer.New(zapcore.DebugLevel)
	ch := NewZapChannel(zap.New(core), NewFilter(All))

	ch.Send(NewEvent(Fatal, scope.New("App"), "unrecoverable"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("zap received %d entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", entries[0].Level)
	}
	if entries[0].ContextMap()["severity"] != "fatal" {
		t.Error("original severity should survive as a field")
	}
}
