// Package demo runs the lamp chain scenario: build the chain, ripple every
// lamp on from the entry lamp, then ripple them all off again.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/lamps/internal/switchboard"
	"github.com/mesh-intelligence/lamps/pkg/chain"
	"github.com/mesh-intelligence/lamps/pkg/types"
)

const (
	startBanner = "***************************\n" +
		"********** START **********\n" +
		"***************************\n"
	endBanner = "**************************\n" +
		"********** END ***********\n" +
		"**************************\n"
)

// phase is one ripple of the scenario.
type phase struct {
	name   string
	open   string
	close  string
	action func(*switchboard.Switchboard) chain.Action
}

var phases = []phase{
	{
		name:   types.LampStateOn,
		open:   "********** ON ***********",
		close:  "********* END ON ********",
		action: (*switchboard.Switchboard).TurnOn,
	},
	{
		name:   types.LampStateOff,
		open:   "********** OFF **********",
		close:  "******** END OFF ********",
		action: (*switchboard.Switchboard).TurnOff,
	},
}

// Runner drives one demo run.
type Runner struct {
	cfg   types.Config
	out   io.Writer
	log   *slog.Logger
	board *switchboard.Switchboard

	// ShowPlan prints the ripple levels before switching.
	ShowPlan bool
}

// New returns a Runner for cfg that narrates to out.
func New(cfg types.Config, out io.Writer, log *slog.Logger) *Runner {
	return &Runner{
		cfg:   cfg,
		out:   out,
		log:   log,
		board: switchboard.New(out, cfg.Delay, log),
	}
}

// Run validates the configuration, builds the chain, and runs the on and off
// ripples from the entry lamp. It returns the chain in its final state.
func (r *Runner) Run() (*chain.Chain, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c, err := chain.New(r.cfg.Lamps)
	if err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}
	// A freshly built chain is always linked symmetrically.
	if err := c.Validate(); err != nil {
		panic(err)
	}
	entry, err := c.Lookup(r.cfg.EntryName())
	if err != nil {
		return nil, fmt.Errorf("entry lamp: %w", err)
	}

	fmt.Fprint(r.out, startBanner)
	if r.ShowPlan {
		r.plan(entry)
	}

	for _, p := range phases {
		if err := r.ripple(entry, p); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprint(r.out, endBanner)
	return c, nil
}

// ripple runs one phase under its own run ID.
func (r *Runner) ripple(entry *chain.Node, p phase) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	log := r.log.With("run", id.String(), "phase", p.name)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, p.open)
	log.Info("ripple started", "entry", entry.Name(), "lamps", entry.Chain().Len())

	chain.OperateExchange(entry, p.action(r.board.WithLogger(log)))

	log.Info("ripple finished")
	fmt.Fprintln(r.out, p.close)
	return nil
}

// plan prints the lamps of each ripple level, nearest first.
func (r *Runner) plan(entry *chain.Node) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Ripple from %s:\n", entry.Name())
	for d, level := range chain.Ripple(entry) {
		fmt.Fprintf(r.out, "  %d:", d)
		for _, n := range level {
			fmt.Fprintf(r.out, " [%s]", n.Name())
		}
		fmt.Fprintln(r.out)
	}
}
