// Package switchboard provides the turn-on and turn-off actions applied to
// lamps during a ripple. Each real transition is narrated to an output
// stream and followed by a blocking pause that paces the demo.
package switchboard

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/lamps/pkg/chain"
	"github.com/mesh-intelligence/lamps/pkg/types"
)

// Switchboard narrates lamp transitions and paces them.
type Switchboard struct {
	out   io.Writer
	delay time.Duration
	log   *slog.Logger

	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// New returns a Switchboard writing narration to out and pausing for delay
// after every transition. A zero delay disables the pause.
func New(out io.Writer, delay time.Duration, log *slog.Logger) *Switchboard {
	return &Switchboard{out: out, delay: delay, log: log, sleep: time.Sleep}
}

// WithLogger returns a copy of s that logs transitions to log.
func (s *Switchboard) WithLogger(log *slog.Logger) *Switchboard {
	c := *s
	c.log = log
	return &c
}

// TurnOn returns an action that switches a lamp on. Lamps already on are left
// untouched and produce no narration or pause.
func (s *Switchboard) TurnOn() chain.Action {
	return func(n *chain.Node) {
		if !n.On() {
			s.set(n, true)
		}
	}
}

// TurnOff returns an action that switches a lamp off. Lamps already off are
// left untouched.
func (s *Switchboard) TurnOff() chain.Action {
	return func(n *chain.Node) {
		if n.On() {
			s.set(n, false)
		}
	}
}

func (s *Switchboard) set(n *chain.Node, on bool) {
	n.SetOn(on)
	state := types.StateName(on)
	fmt.Fprintf(s.out, "%s is now %s.\n", n.Name(), state)
	s.log.Debug("lamp switched", "lamp", n.Name(), "state", state)
	if s.delay > 0 {
		s.sleep(s.delay)
	}
}
