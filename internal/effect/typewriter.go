package effect

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoPhrases   = errors.New("typewriter needs at least one phrase")
	ErrEmptyPhrase = errors.New("typewriter phrases must not be empty")
)

// TypewriterTiming holds the delays of the typing effect.
type TypewriterTiming struct {
	Type  time.Duration // per typed rune
	Erase time.Duration // per erased rune
	Hold  time.Duration // after a phrase is fully typed, before erasing begins
	Pause time.Duration // after a phrase is fully erased, before the next one
	Start time.Duration // before the very first rune
}

func DefaultTypewriterTiming() TypewriterTiming {
	return TypewriterTiming{
		Type:  100 * time.Millisecond,
		Erase: 50 * time.Millisecond,
		Hold:  2000 * time.Millisecond,
		Pause: 500 * time.Millisecond,
	}
}

// TypewriterState is the whole position of the effect.
// Count is measured in runes of the current phrase.
type TypewriterState struct {
	Index   int
	Count   int
	Erasing bool
}

// Typewriter cycles through phrases, revealing and removing one rune per
// tick. It is not safe for concurrent use; drive it from a single Loop.
type Typewriter struct {
	phrases [][]rune
	timing  TypewriterTiming
	state   TypewriterState
}

func NewTypewriter(phrases []string, timing TypewriterTiming) (*Typewriter, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}

	tw := &Typewriter{timing: timing, phrases: make([][]rune, len(phrases))}
	for i, p := range phrases {
		if p == "" {
			return nil, fmt.Errorf("phrase %d: %w", i, ErrEmptyPhrase)
		}
		tw.phrases[i] = []rune(p)
	}
	return tw, nil
}

func (tw *Typewriter) State() TypewriterState {
	return tw.state
}

func (tw *Typewriter) Phrase() string {
	return string(tw.phrases[tw.state.Index])
}

// Text is what is currently displayed.
func (tw *Typewriter) Text() string {
	return string(tw.phrases[tw.state.Index][:tw.state.Count])
}

// Tick advances by one rune and returns the delay before the next tick.
func (tw *Typewriter) Tick() time.Duration {
	s := &tw.state
	phrase := tw.phrases[s.Index]

	if !s.Erasing {
		s.Count++
		if s.Count == len(phrase) {
			s.Erasing = true
			return tw.timing.Hold + tw.timing.Erase
		}
		return tw.timing.Type
	}

	s.Count--
	if s.Count == 0 {
		s.Erasing = false
		s.Index = (s.Index + 1) % len(tw.phrases)
		return tw.timing.Pause
	}
	return tw.timing.Erase
}

// Animate runs tw on sched until the returned loop is stopped, passing every
// displayed frame to sink. With a start delay the first rune appears when it
// elapses, otherwise one Type interval in.
func (tw *Typewriter) Animate(sched Scheduler, sink func(text string)) *Loop {
	first := tw.timing.Type
	if tw.timing.Start > 0 {
		first = tw.timing.Start
	}
	return Run(sched, first, func() (time.Duration, bool) {
		next := tw.Tick()
		sink(tw.Text())
		return next, true
	})
}
