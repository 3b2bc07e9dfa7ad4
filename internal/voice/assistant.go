package voice

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const exitDelay = 3 * time.Second

// Engine is the injected speech capability. Speak blocks until the prompt
// has finished playing; Listen blocks until one utterance has been
// recognized. Available reports whether the underlying capability exists at
// all.
type Engine interface {
	Available() bool
	Speak(ctx context.Context, text string) error
	Listen(ctx context.Context) (string, error)
}

// Assistant walks the fixed prompt sequence and maps recognized utterances
// onto form fields. It never speaks and listens at the same time: each
// prompt finishes before listening starts, and a finished prompt always
// starts listening.
type Assistant struct {
	engine Engine
	lang   Language
	emit   func(field Field, value string)
	log    zerolog.Logger

	sleep func(time.Duration) // swapped out in tests

	mu        sync.Mutex
	stepIndex int
	listening bool
	speaking  bool
	disabled  bool
	completed bool
	cancel    context.CancelFunc
}

// NewAssistant builds an assistant emitting (field, value) pairs through
// emit. The emit callback is the only way values reach the host form.
func NewAssistant(engine Engine, lang Language, emit func(field Field, value string), log zerolog.Logger) *Assistant {
	return &Assistant{
		engine: engine,
		lang:   lang,
		emit:   emit,
		log:    log,
		sleep:  time.Sleep,
	}
}

// MapCategory normalizes an utterance for the category step: the first
// keyword (English or Telugu) contained in the lower-cased utterance wins,
// and anything unmatched falls back to "other".
func MapCategory(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, strings.ToLower(kw.keyword)) {
			return string(kw.category)
		}
	}
	return string(categoryKeywords[len(categoryKeywords)-1].category)
}

// Run drives the whole prompt sequence: welcome, then one prompt/listen
// round per field, then the completion message. It returns ErrUnavailable
// without side effects when the speech capability is missing, and ctx errors
// when cancelled mid-sequence.
func (a *Assistant) Run(ctx context.Context) error {
	if a.engine == nil || !a.engine.Available() {
		a.mu.Lock()
		a.disabled = true
		a.mu.Unlock()
		a.log.Warn().Msg("speech capability unavailable, voice input disabled")
		return ErrUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancel = cancel
	a.stepIndex = 0
	a.completed = false
	a.mu.Unlock()
	defer cancel()

	if err := a.speak(ctx, welcome(a.lang)); err != nil {
		return err
	}

	for {
		a.mu.Lock()
		idx := a.stepIndex
		a.mu.Unlock()

		if err := a.speak(ctx, steps[idx].prompt(a.lang)); err != nil {
			return err
		}

		utterance, err := a.listen(ctx)
		if err != nil {
			return err
		}

		done := a.HandleUtterance(utterance)
		if done {
			break
		}
	}

	if err := a.speak(ctx, completion(a.lang)); err != nil {
		return err
	}
	a.sleep(exitDelay)
	return nil
}

// HandleUtterance consumes one recognized utterance for the current step:
// the category step is normalized through the keyword table, every other
// field passes through verbatim. It advances exactly one step per call and
// reports true once the description step has been filled.
func (a *Assistant) HandleUtterance(utterance string) (done bool) {
	a.mu.Lock()
	idx := a.stepIndex
	if a.completed || idx >= len(steps) {
		a.mu.Unlock()
		return true
	}
	a.mu.Unlock()

	current := steps[idx]
	value := utterance
	if current.field == FieldCategory {
		value = MapCategory(utterance)
	}
	a.emit(current.field, value)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stepIndex < len(steps)-1 {
		a.stepIndex++
		return false
	}
	a.completed = true
	return true
}

// Restart resets to the first step and cancels any in-flight speech. The
// caller starts a fresh Run afterwards.
func (a *Assistant) Restart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
	a.stepIndex = 0
	a.completed = false
	a.listening = false
	a.speaking = false
}

// CurrentStep returns the 0-based index of the field being collected.
func (a *Assistant) CurrentStep() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stepIndex
}

// Completed reports whether every step has been filled.
func (a *Assistant) Completed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.completed
}

// Disabled reports whether the assistant shut itself off because the speech
// capability was unavailable.
func (a *Assistant) Disabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disabled
}

// Listening reports whether the assistant is currently waiting on an
// utterance.
func (a *Assistant) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// Speaking reports whether a prompt is currently playing.
func (a *Assistant) Speaking() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speaking
}

func (a *Assistant) speak(ctx context.Context, text string) error {
	a.mu.Lock()
	a.speaking = true
	a.listening = false
	a.mu.Unlock()

	err := a.engine.Speak(ctx, text)

	a.mu.Lock()
	a.speaking = false
	a.mu.Unlock()
	return err
}

func (a *Assistant) listen(ctx context.Context) (string, error) {
	a.mu.Lock()
	a.listening = true
	a.mu.Unlock()

	utterance, err := a.engine.Listen(ctx)

	a.mu.Lock()
	a.listening = false
	a.mu.Unlock()
	return utterance, err
}
