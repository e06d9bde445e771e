// Package viz: format dispatch.

package viz

import (
	"fmt"

	"github.com/katalvlaran/pfad/party"
)

// Render emits the party in the requested format. It is the switch the CLI
// drives; library callers usually reach for DOT or Mermaid directly.
// Returns ErrUnknownFormat for formats this package does not emit, plus
// whatever the chosen renderer returns.
func Render(p *party.Party, format Format, opts ...Option) (string, error) {
	switch format {
	case FormatDOT:
		return DOT(p, opts...)
	case FormatMermaid:
		return Mermaid(p, opts...)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
