// Package party: core types for the guest roster and the "knows" relation.
//
// This file declares ID, Party, PartyStats, the Option set, sentinel errors,
// and the New constructor. Method implementations live in party.go; the
// read-only matrix view lives in snapshot.go.

package party

import (
	"errors"
	"strconv"
	"sync"

	"github.com/katalvlaran/pfad/sets"
)

// Sentinel errors for party operations.
var (
	// ErrInvalidID indicates a negative guest ID was supplied.
	ErrInvalidID = errors.New("party: guest ID must be non-negative")

	// ErrPersonNotFound indicates an operation referenced someone who is not
	// on the guest list.
	ErrPersonNotFound = errors.New("party: person not found")

	// ErrAcquaintanceNotFound indicates a Forget call for an introduction
	// that was never recorded.
	ErrAcquaintanceNotFound = errors.New("party: acquaintance not found")
)

// ID identifies a person. Guests carry non-negative IDs; negative values are
// rejected by every mutating operation. IDs referenced by an introduction but
// never invited are called outsiders.
type ID int64

// String renders the id in decimal, the form used by renderers and the demo
// output line.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Option configures a Party before use.
type Option func(*Party)

// WithStrictGuestList makes Introduce refuse knowers that are not already on
// the guest list instead of inviting them on the spot.
func WithStrictGuestList() Option {
	return func(p *Party) { p.strict = true }
}

// Party is an in-memory model of one gathering: a set of guests plus a
// directed "knows" relation between people.
//
// The relation is reflexive (everyone knows themself) and deliberately not
// symmetric: fans know celebrities who do not know them back. Introductions
// may point at outsiders; such references are legal but invisible to
// Snapshot and to the clique predicates built on top of it.
//
// muGuests protects the guest roster; muIntro protects the introduction
// buckets. Operations that need both always lock muGuests first.
type Party struct {
	muGuests sync.RWMutex // guards guests
	muIntro  sync.RWMutex // guards knows

	strict bool // refuse unknown knowers in Introduce

	guests sets.Set[ID]        // invited people
	knows  map[ID]sets.Set[ID] // knower → people introduced to them
}

// PartyStats summarizes a Party at a single point in time.
//
// Guests and Introductions are captured under separate read locks, so each
// figure is internally consistent but the pair may straddle a concurrent
// mutation.
type PartyStats struct {
	// Guests is the number of people on the guest list.
	Guests int

	// Introductions is the number of recorded "knower → known" pairs.
	// Reflexive knowledge is implicit and never counted.
	Introductions int

	// Outsiders counts distinct IDs that appear as the target of an
	// introduction without being on the guest list.
	Outsiders int

	// StrictGuestList reports whether the party was built with
	// WithStrictGuestList.
	StrictGuestList bool
}

// New creates an empty Party.
// By default the guest list is relaxed: Introduce invites unknown knowers
// on the spot. Complexity: O(1).
func New(opts ...Option) *Party {
	p := &Party{
		guests: sets.New[ID](),
		knows:  make(map[ID]sets.Set[ID]),
	}
	// Apply options
	for _, opt := range opts {
		opt(p)
	}

	return p
}
