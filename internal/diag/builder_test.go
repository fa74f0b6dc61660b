package diag_test

import (
	"testing"

	"beleg/internal/diag"
	"beleg/internal/source"
)

func TestBuilderFluent(t *testing.T) {
	ctx := diag.NewContext(diag.DefaultOptions())
	sink := diag.NewCollectEmitter()
	ctx.AddEmitter(sink)

	errSpan := source.NewSpan(35, 53)
	ctx.Build(diag.LevelError, "undefined variable", errSpan).
		WithCode(diag.Code(4002)).
		Label(errSpan, "not found in this scope", diag.LevelError).
		Note("perhaps you meant to import this variable?").
		Emit()

	if sink.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Len())
	}
	d := sink.Diags()[0]
	if d.Code != 4002 {
		t.Errorf("code = %d, want 4002", d.Code)
	}
	if len(d.Labels) != 1 {
		t.Fatalf("labels = %d, want 1", len(d.Labels))
	}
	label := d.Labels[0]
	if label.Span != errSpan || label.Text != "not found in this scope" {
		t.Errorf("label = %+v", label)
	}
	if label.SurroundingLines != 1 {
		t.Errorf("label surrounding lines = %d, want 1", label.SurroundingLines)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "perhaps you meant to import this variable?" {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestSpanLabelUsesDiagLevel(t *testing.T) {
	ctx := diag.NewContext(diag.DefaultOptions())
	sink := diag.NewCollectEmitter()
	ctx.AddEmitter(sink)
	sp := source.NewSpan(0, 4)

	ctx.Build(diag.LevelWarning, "suspicious", sp).
		SpanLabel(sp, "here").
		Emit()

	if got := sink.Diags()[0].Labels[0].Level; got != diag.LevelWarning {
		t.Errorf("span label level = %v, want Warning", got)
	}
}

func TestCollectSort(t *testing.T) {
	ctx := diag.NewContext(diag.DefaultOptions())
	sink := diag.NewCollectEmitter()
	ctx.AddEmitter(sink)

	ctx.Build(diag.LevelWarning, "later", source.NewSpan(20, 25)).Emit()
	ctx.Build(diag.LevelError, "earlier", source.NewSpan(5, 9)).Emit()
	ctx.Build(diag.LevelError, "same spot", source.NewSpan(20, 25)).Emit()

	sink.Sort()

	got := sink.Diags()
	if got[0].Message != "earlier" {
		t.Errorf("first after sort = %q, want earlier", got[0].Message)
	}
	// при равных спанах выше уровень идёт первым
	if got[1].Message != "same spot" || got[2].Message != "later" {
		t.Errorf("order = [%q, %q, %q]", got[0].Message, got[1].Message, got[2].Message)
	}
}

func TestLevelStrings(t *testing.T) {
	tests := []struct {
		level diag.Level
		want  string
	}{
		{diag.LevelNote, "Note"},
		{diag.LevelWarning, "Warning"},
		{diag.LevelError, "Error"},
		{diag.LevelFatal, "Fatal"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.SynUnexpectedToken.ID(); got != "[2001]" {
		t.Errorf("ID = %q, want [2001]", got)
	}
}
