// Package celebrity: options, results and sentinel errors shared by the
// chapter-9 search functions.
//
// The searches (FindClique, FindCliqueExhaustive, FindCelebrity) live in
// their own files; the party-wide predicates live in predicates.go.

package celebrity

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/pfad/party"
)

// Sentinel errors for celebrity searches.
var (
	// ErrNilParty is returned when a nil *party.Party is passed.
	ErrNilParty = errors.New("celebrity: party is nil")

	// ErrPartyTooLarge is returned by FindCliqueExhaustive when the guest
	// list exceeds maxExhaustiveGuests and the subset scan cannot be
	// enumerated in a 64-bit mask.
	ErrPartyTooLarge = errors.New("celebrity: party too large for exhaustive search")

	// ErrUnknownGuest is returned by the predicates when a member id is not
	// on the guest list.
	ErrUnknownGuest = errors.New("celebrity: member is not on the guest list")

	// ErrOptionViolation is reserved for invalid option values. The current
	// With* constructors ignore nil arguments instead of failing, so no code
	// path returns it yet; it is declared so callers can branch on option
	// semantics once tunables with value constraints appear.
	ErrOptionViolation = errors.New("celebrity: invalid option value")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by every search function.
type Options struct {
	// Ctx allows cancellation and deadlines. The elimination searches check
	// it once per guest; the exhaustive scan checks it periodically.
	Ctx context.Context

	// OnCandidate is called with the member ids (ascending) each time the
	// search adopts a new candidate clique: every start, restart and join of
	// the elimination fold, every change of the single-celebrity candidate,
	// and the verified answer of the exhaustive scan. Nil means no hook;
	// the ids are only materialized when one is registered.
	OnCandidate func(members []party.ID)
}

// DefaultOptions returns Options with a background context and no candidate
// hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnCandidate: nil,
	}
}

// WithContext sets a custom context for cancellation. Nil contexts are
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCandidate registers a hook observing every candidate clique the
// search adopts. Nil hooks are ignored.
func WithOnCandidate(fn func(members []party.ID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// Result holds the outcome of a celebrity search.
type Result struct {
	// Members is the celebrity clique, ascending. Nil when Found is false.
	Members []party.ID

	// Found reports whether a celebrity clique exists. "No celebrity" is a
	// normal outcome, never an error.
	Found bool

	// Probes counts the acquaintance-relation lookups the search performed,
	// elimination and verification together. Diagnostic only; identical
	// inputs yield identical probe counts.
	Probes int
}

// String renders the result as the classic demo line:
//
//	{1, 2, 3} is the celebrity clique.
//
// or, when no clique exists:
//
//	no celebrity clique.
func (r *Result) String() string {
	if !r.Found {
		return "no celebrity clique."
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range r.Members {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(id.String())
	}
	sb.WriteString("} is the celebrity clique.")

	return sb.String()
}
