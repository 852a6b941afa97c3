package chatlayout

import (
	"sync"
	"time"
)

// TimestampElement shows the time a message was sent, formatted under the
// user's current timestamp preference.
type TimestampElement struct {
	base
	time time.Time

	// Single-slot cache: the text element for the last format seen.
	mu     sync.Mutex
	format string
	text   *TextElement
}

// NewTimestampElement returns a timestamp element for t. Formatting happens
// on the first layout pass.
func NewTimestampElement(t time.Time) *TimestampElement {
	return &TimestampElement{base: newBase(NewFlags(Timestamp)), time: t}
}

// Time returns the stored point in time.
func (e *TimestampElement) Time() time.Time { return e.time }

// AddToContainer lays out the formatted time, reformatting only when the
// format preference changed since the previous pass.
func (e *TimestampElement) AddToContainer(c *Container, rc RenderContext) {
	if !e.visible(rc) {
		return
	}
	e.cached(rc).AddToContainer(c, rc)
}

func (e *TimestampElement) cached(rc RenderContext) *TextElement {
	format := rc.Settings.TimestampFormat()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.text == nil || format != e.format {
		e.format = format
		e.text = NewTextElement(rc.Times.FormatTime(e.time, format), NewFlags(Timestamp), SystemColor, FontChatMedium)
	}
	return e.text
}
