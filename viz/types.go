// Package viz: formats, options and sentinel errors.

package viz

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pfad/party"
)

// Format selects the rendering syntax.
type Format string

// Supported output formats.
const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Flow directions accepted by both renderers.
const (
	DirectionTB = "TB"
	DirectionLR = "LR"
	DirectionBT = "BT"
	DirectionRL = "RL"
)

// highlightColor fills the nodes named by WithHighlight.
const highlightColor = "#ffd93d"

// Sentinel errors for rendering.
var (
	// ErrNilParty is returned when a nil *party.Party is passed.
	ErrNilParty = errors.New("viz: party is nil")

	// ErrBadDirection is returned when the configured direction is not one
	// of TB, LR, BT, RL.
	ErrBadDirection = errors.New("viz: direction must be one of TB, LR, BT, RL")

	// ErrUnknownFormat is returned by Render for formats this package does
	// not emit.
	ErrUnknownFormat = errors.New("viz: unknown output format")
)

// Option configures a rendering via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by DOT and Mermaid.
type Options struct {
	// Direction is the flow direction: TB, LR, BT or RL. Validated when a
	// renderer runs, not when the option is applied.
	Direction string

	// Highlight lists guests to draw filled, typically the celebrity clique.
	// Ids that are not guests are ignored.
	Highlight []party.ID
}

// DefaultOptions returns Options drawing left-to-right with no highlight.
func DefaultOptions() Options {
	return Options{Direction: DirectionLR}
}

// WithDirection sets the flow direction.
func WithDirection(d string) Option {
	return func(o *Options) { o.Direction = d }
}

// WithHighlight marks the given guests for filled rendering. The slice is
// copied; later caller mutations do not affect the rendering.
func WithHighlight(ids []party.ID) Option {
	return func(o *Options) { o.Highlight = append([]party.ID(nil), ids...) }
}

// prepare validates the party, resolves options and captures the snapshot
// the renderers walk. Shared by DOT and Mermaid.
func prepare(p *party.Party, opts []Option) (*party.Snapshot, Options, error) {
	if p == nil {
		return nil, Options{}, ErrNilParty
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Direction {
	case DirectionTB, DirectionLR, DirectionBT, DirectionRL:
	default:
		return nil, Options{}, fmt.Errorf("%w: got %q", ErrBadDirection, o.Direction)
	}

	return p.Snapshot(), o, nil
}

// markHighlighted maps the highlight ids onto snapshot indices. Non-guests
// have no index and drop out here.
func markHighlighted(snap *party.Snapshot, highlight []party.ID) []bool {
	marked := make([]bool, snap.Len())
	for _, id := range highlight {
		if i, ok := snap.Index(id); ok {
			marked[i] = true
		}
	}

	return marked
}
