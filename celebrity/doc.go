// Package celebrity solves the "finding celebrities" puzzle of Bird's
// Pearls of Functional Algorithm Design, chapter 9: locate the celebrity
// clique of a party, the non-empty set of guests everybody at the party
// knows, whose members know only each other.
//
// What:
//
//   - FindClique: the production search. An elimination fold keeps a working
//     clique, classifying each guest against the clique head (start, restart,
//     skip, join), then one verification pass confirms the survivor.
//   - FindCliqueExhaustive: the reference search. Tests every non-empty
//     subset of the guest list against the predicate; at most one non-empty
//     celebrity clique can exist, so scan order is irrelevant. Capped at 62
//     guests by the bitmask enumeration.
//   - FindCelebrity: the classic single-celebrity variant, a celebrity
//     clique of size one. One probe per comparison leaves one survivor.
//   - IsClique / IsCelebrityClique: the predicates behind the searches,
//     exposed for callers that want to check a set of their own.
//
// Why:
//
//   - The exhaustive scan is the executable definition; the fold reaches the
//     same answer in O(n²) probes instead of O(2ⁿ) subsets. Tests cross-check
//     one against the other.
//   - All searches run on a party Snapshot captured once at entry, so
//     results are deterministic even while the live Party keeps mutating.
//
// Key types:
//
//   - Option / Options: functional search configuration; WithContext for
//     cancellation, WithOnCandidate to observe every candidate clique the
//     search adopts.
//   - Result: Members (ascending), Found, Probes. Result.String renders the
//     demo line "{1, 2, 3} is the celebrity clique."
//
// Semantics, shared with the party package:
//
//   - knows is reflexive and deliberately not symmetric.
//   - Both predicate conditions quantify over the guest list only: knowing
//     an outsider disqualifies nobody.
//   - "No celebrity clique" is a normal result (Found == false), never an
//     error.
//
// Complexity (n guests, k clique members):
//
//   - FindClique:           O(n²) probes, O(n) space
//   - FindCliqueExhaustive: O(2ⁿ·n²) probes, O(n) space
//   - FindCelebrity:        O(n) probes, O(1) space
//   - IsClique:             O(k²) probes
//   - IsCelebrityClique:    O(n·k) probes
//
// Errors:
//
//   - ErrNilParty       nil *party.Party supplied
//   - ErrPartyTooLarge  exhaustive scan beyond 62 guests
//   - ErrUnknownGuest   predicate member not on the guest list
//   - context errors    surfaced unwrapped on cancellation
package celebrity
