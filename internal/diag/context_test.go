package diag_test

import (
	"testing"

	"beleg/internal/diag"
	"beleg/internal/source"
)

func TestEmitFansOut(t *testing.T) {
	ctx := diag.NewContext(diag.DefaultOptions())
	first := diag.NewCollectEmitter()
	second := diag.NewCollectEmitter()
	ctx.AddEmitter(first)
	ctx.AddEmitter(second)

	ctx.Build(diag.LevelError, "something broke", source.NewSpan(10, 15)).Emit()

	if first.Len() != 1 || second.Len() != 1 {
		t.Fatalf("both emitters should receive the diagnostic, got %d and %d", first.Len(), second.Len())
	}
	got := first.Diags()[0]
	if got.Level != diag.LevelError || got.Message != "something broke" {
		t.Errorf("diag = %+v", got)
	}
	if got.Primary.Start != 10 || got.Primary.End != 15 {
		t.Errorf("primary span = %v, want [10, 15)", got.Primary)
	}
}

func TestCounters(t *testing.T) {
	ctx := diag.NewContext(diag.DefaultOptions())
	sp := source.NewSpan(0, 1)

	ctx.Build(diag.LevelError, "e", sp).Emit()
	ctx.Build(diag.LevelFatal, "f", sp).Emit()
	ctx.Build(diag.LevelWarning, "w", sp).Emit()
	ctx.Build(diag.LevelNote, "n", sp).Emit()

	if ctx.ErrorCount() != 2 {
		t.Errorf("ErrorCount = %d, want 2 (error + fatal)", ctx.ErrorCount())
	}
	if ctx.WarningCount() != 1 {
		t.Errorf("WarningCount = %d, want 1", ctx.WarningCount())
	}
}

func TestVolumeLimits(t *testing.T) {
	ctx := diag.NewContext(diag.Options{MaxErrors: 2, MaxWarnings: 1})
	sink := diag.NewCollectEmitter()
	ctx.AddEmitter(sink)
	sp := source.NewSpan(10, 15)

	ctx.Build(diag.LevelError, "error 1", sp).Emit()
	ctx.Build(diag.LevelError, "error 2", sp).Emit()
	ctx.Build(diag.LevelError, "error 3", sp).Emit()

	if ctx.ErrorCount() != 2 {
		t.Errorf("ErrorCount = %d, want 2", ctx.ErrorCount())
	}

	ctx.Build(diag.LevelWarning, "warning 1", sp).Emit()
	ctx.Build(diag.LevelWarning, "warning 2", sp).Emit()

	if ctx.WarningCount() != 1 {
		t.Errorf("WarningCount = %d, want 1", ctx.WarningCount())
	}

	// заметки не ограничиваются
	ctx.Build(diag.LevelNote, "note", sp).Emit()
	if sink.Len() != 4 {
		t.Errorf("emitted = %d diagnostics, want 4 (2 errors + 1 warning + 1 note)", sink.Len())
	}
}

func TestCanEmit(t *testing.T) {
	ctx := diag.NewContext(diag.Options{MaxErrors: 1, MaxWarnings: 1})
	sp := source.NewSpan(0, 1)

	if !ctx.CanEmit(diag.LevelError) {
		t.Error("fresh context should accept errors")
	}
	ctx.Build(diag.LevelError, "e", sp).Emit()
	if ctx.CanEmit(diag.LevelError) {
		t.Error("limit reached, errors should be rejected")
	}
	if ctx.CanEmit(diag.LevelFatal) {
		t.Error("fatals share the error limit")
	}
	if !ctx.CanEmit(diag.LevelNote) {
		t.Error("notes are never limited")
	}
}

func TestShouldAbort(t *testing.T) {
	ctx := diag.NewContext(diag.Options{MaxErrors: 100, MaxWarnings: 100, AbortOnFirstError: true})
	sp := source.NewSpan(0, 1)

	if ctx.ShouldAbort() {
		t.Error("fresh context should not abort")
	}
	ctx.Build(diag.LevelWarning, "w", sp).Emit()
	if ctx.ShouldAbort() {
		t.Error("warnings should not trigger abort")
	}
	ctx.Build(diag.LevelError, "e", sp).Emit()
	if !ctx.ShouldAbort() {
		t.Error("first error should trigger abort")
	}

	relaxed := diag.NewContext(diag.DefaultOptions())
	relaxed.Build(diag.LevelError, "e", sp).Emit()
	if relaxed.ShouldAbort() {
		t.Error("default options should never abort")
	}
}

func TestIndependentContexts(t *testing.T) {
	sp := source.NewSpan(0, 1)
	a := diag.NewContext(diag.Options{MaxErrors: 1, MaxWarnings: 1})
	b := diag.NewContext(diag.Options{MaxErrors: 1, MaxWarnings: 1})

	a.Build(diag.LevelError, "e", sp).Emit()

	if b.ErrorCount() != 0 {
		t.Error("contexts must not share counters")
	}
	if !b.CanEmit(diag.LevelError) {
		t.Error("fresh context must accept errors regardless of siblings")
	}
}
