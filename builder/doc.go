// Package builder constructs synthetic parties with known celebrity-clique
// structure. The constructors feed tests, benchmarks and the demo CLI's
// built-in scenarios.
//
// What:
//
//   - Complete(n):         everybody knows everybody; the whole party is its
//     own celebrity clique.
//   - Hermits(n):          nobody knows anybody; no clique for n ≥ 2, the
//     lone guest for n == 1.
//   - Ring(n):             guest i knows guest i+1 (wrapping); no clique for
//     n ≥ 2.
//   - PlantedClique(n, k): guests 1..k form the celebrity clique, the rest
//     are fans.
//   - Random(n, p, seed):  each ordered pair knows with probability p,
//     deterministically from seed.
//   - Demo():              the chapter-9 party from Bird's book, celebrity
//     clique {1, 2, 3}.
//
// Why:
//
//   - Searches are only as trustworthy as the parties they are checked
//     against; these constructors pin the expected answer by construction.
//   - Everything here is deterministic: fixed guest ids 1..n, introductions
//     emitted in ascending order, and a fixed-seed policy for Random
//     (seed == 0 selects a stable default, never the clock).
//
// Errors:
//
//   - ErrTooFewGuests      n below 1
//   - ErrBadCliqueSize     k outside 1..n
//   - ErrInvalidProbability p outside [0, 1]
//
// Complexity: O(n) to O(n²) introductions depending on the constructor;
// see each function.
package builder
