// Package builder: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Implementations attach the constructor name and the offending
//     parameters via %w wrapping, never by editing the sentinel text.
//   - Constructors validate before touching a Party and never panic.

package builder

import "errors"

// ErrTooFewGuests indicates the requested guest count is below the minimum
// of one. Returned by every constructor taking n.
var ErrTooFewGuests = errors.New("builder: too few guests")

// ErrBadCliqueSize indicates the planted clique size k lies outside 1..n.
var ErrBadCliqueSize = errors.New("builder: clique size out of range")

// ErrInvalidProbability indicates an acquaintance probability outside the
// closed interval [0, 1]. Returned by Random.
var ErrInvalidProbability = errors.New("builder: probability out of range")
