package battle

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// CharsPerSecond is the reveal speed of battle messages.
const CharsPerSecond = 70

// minStep bounds the reveal interval from below.
const minStep = 6 * time.Millisecond

// Step is the time between two revealed characters.
var Step = max(minStep, time.Second/CharsPerSecond)

// Typewriter reveals a message one grapheme cluster at a time.
type Typewriter struct {
	clusters []string
	visible  int
	elapsed  time.Duration
}

// NewTypewriter starts revealing text from the beginning.
func NewTypewriter(text string) *Typewriter {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return &Typewriter{clusters: clusters}
}

// Tick advances the reveal by elapsed wall time and reports whether any new
// character became visible.
func (t *Typewriter) Tick(elapsed time.Duration) bool {
	if t.Done() || elapsed <= 0 {
		return false
	}
	t.elapsed += elapsed
	n := int(t.elapsed / Step)
	if n == 0 {
		return false
	}
	t.elapsed -= time.Duration(n) * Step
	t.visible = min(t.visible+n, len(t.clusters))
	return true
}

// Complete reveals the rest of the message at once.
func (t *Typewriter) Complete() {
	t.visible = len(t.clusters)
	t.elapsed = 0
}

// Done reports whether the whole message is visible.
func (t *Typewriter) Done() bool {
	return t.visible >= len(t.clusters)
}

// Visible returns how many characters are shown.
func (t *Typewriter) Visible() int {
	return t.visible
}

// Len returns the message length in characters.
func (t *Typewriter) Len() int {
	return len(t.clusters)
}

// Text returns the visible prefix.
func (t *Typewriter) Text() string {
	return strings.Join(t.clusters[:t.visible], "")
}
