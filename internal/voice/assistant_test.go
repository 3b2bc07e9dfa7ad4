package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// scriptedEngine plays back a fixed list of utterances and records every
// prompt it was asked to speak.
type scriptedEngine struct {
	available  bool
	utterances []string
	spoken     []string
}

func (e *scriptedEngine) Available() bool { return e.available }

func (e *scriptedEngine) Speak(_ context.Context, text string) error {
	e.spoken = append(e.spoken, text)
	return nil
}

func (e *scriptedEngine) Listen(_ context.Context) (string, error) {
	if len(e.utterances) == 0 {
		return "", errors.New("script exhausted")
	}
	u := e.utterances[0]
	e.utterances = e.utterances[1:]
	return u, nil
}

type fieldRecorder struct {
	values map[Field]string
}

func newFieldRecorder() *fieldRecorder {
	return &fieldRecorder{values: make(map[Field]string)}
}

func (r *fieldRecorder) emit(field Field, value string) {
	r.values[field] = value
}

func TestMapCategory(t *testing.T) {
	cases := []struct {
		utterance string
		want      string
	}{
		{"drains", "overflowingDrains"},
		{"The Drains near my house overflow", "overflowingDrains"},
		{"no toilets in the colony", "lackOfToilets"},
		{"వ్యర్థాలు", "wasteDisposal"},
		{"dirty water everywhere", "waterContamination"},
		{"broken sewage line", "brokenSewage"},
		{"ఇతర", "other"},
		{"something unrelated entirely", "other"},
		{"", "other"},
	}
	for _, tc := range cases {
		if got := MapCategory(tc.utterance); got != tc.want {
			t.Errorf("MapCategory(%q) = %q, want %q", tc.utterance, got, tc.want)
		}
	}
}

func TestAssistant_RunFullSequence(t *testing.T) {
	engine := &scriptedEngine{
		available:  true,
		utterances: []string{"Ravi Kumar", "Warangal Rural", "the drains are blocked", "water stands for days"},
	}
	rec := newFieldRecorder()
	a := NewAssistant(engine, LangEnglish, rec.emit, zerolog.Nop())
	a.sleep = func(time.Duration) {}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !a.Completed() {
		t.Fatalf("expected completed after full sequence")
	}
	if rec.values[FieldName] != "Ravi Kumar" {
		t.Fatalf("name not captured: %q", rec.values[FieldName])
	}
	if rec.values[FieldVillage] != "Warangal Rural" {
		t.Fatalf("village not captured: %q", rec.values[FieldVillage])
	}
	if rec.values[FieldCategory] != "overflowingDrains" {
		t.Fatalf("category not normalized: %q", rec.values[FieldCategory])
	}
	if rec.values[FieldDescription] != "water stands for days" {
		t.Fatalf("description not captured verbatim: %q", rec.values[FieldDescription])
	}

	// welcome + 4 prompts + completion
	if len(engine.spoken) != 6 {
		t.Fatalf("expected 6 spoken messages, got %d: %v", len(engine.spoken), engine.spoken)
	}
	if engine.spoken[0] != welcomeEN {
		t.Fatalf("unexpected welcome: %q", engine.spoken[0])
	}
	if engine.spoken[len(engine.spoken)-1] != completionEN {
		t.Fatalf("unexpected completion: %q", engine.spoken[len(engine.spoken)-1])
	}
}

func TestAssistant_TeluguPrompts(t *testing.T) {
	engine := &scriptedEngine{
		available:  true,
		utterances: []string{"రవి", "వరంగల్", "కాలువలు", "వివరాలు"},
	}
	rec := newFieldRecorder()
	a := NewAssistant(engine, LangTelugu, rec.emit, zerolog.Nop())
	a.sleep = func(time.Duration) {}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if engine.spoken[0] != welcomeTE {
		t.Fatalf("expected Telugu welcome, got %q", engine.spoken[0])
	}
	if rec.values[FieldCategory] != "overflowingDrains" {
		t.Fatalf("Telugu keyword not mapped: %q", rec.values[FieldCategory])
	}
}

func TestAssistant_HandleUtteranceAdvancesOneStep(t *testing.T) {
	rec := newFieldRecorder()
	a := NewAssistant(&scriptedEngine{available: true}, LangEnglish, rec.emit, zerolog.Nop())

	if a.CurrentStep() != 0 {
		t.Fatalf("expected step 0, got %d", a.CurrentStep())
	}

	if done := a.HandleUtterance("Ravi"); done {
		t.Fatalf("done after first step")
	}
	if a.CurrentStep() != 1 {
		t.Fatalf("expected step 1, got %d", a.CurrentStep())
	}

	a.HandleUtterance("Warangal")
	a.HandleUtterance("toilets")
	if a.Completed() {
		t.Fatalf("completed before description")
	}

	if done := a.HandleUtterance("no public toilets"); !done {
		t.Fatalf("expected done after description")
	}
	if !a.Completed() {
		t.Fatalf("expected completed")
	}

	// Further utterances are ignored.
	if done := a.HandleUtterance("extra"); !done {
		t.Fatalf("expected done to stay true")
	}
}

func TestAssistant_Restart(t *testing.T) {
	rec := newFieldRecorder()
	a := NewAssistant(&scriptedEngine{available: true}, LangEnglish, rec.emit, zerolog.Nop())

	a.HandleUtterance("Ravi")
	a.HandleUtterance("Warangal")
	if a.CurrentStep() != 2 {
		t.Fatalf("expected step 2, got %d", a.CurrentStep())
	}

	a.Restart()
	if a.CurrentStep() != 0 || a.Completed() {
		t.Fatalf("restart did not reset state")
	}
}

func TestAssistant_UnavailableEngine(t *testing.T) {
	rec := newFieldRecorder()
	a := NewAssistant(&scriptedEngine{available: false}, LangEnglish, rec.emit, zerolog.Nop())

	err := a.Run(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !a.Disabled() {
		t.Fatalf("expected assistant disabled")
	}
	if len(rec.values) != 0 {
		t.Fatalf("disabled assistant emitted values: %v", rec.values)
	}
}

func TestAssistant_NilEngine(t *testing.T) {
	a := NewAssistant(nil, LangEnglish, func(Field, string) {}, zerolog.Nop())
	if err := a.Run(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
