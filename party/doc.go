// Package party models a gathering of people and the directed "knows"
// relation between them, the setting of the celebrity-clique puzzle.
//
// What:
//
//   - Party: a thread-safe guest roster plus introduction store. The
//     relation it records is reflexive (everyone knows themself) and
//     deliberately NOT symmetric: fans know celebrities who do not know
//     them back.
//   - Introductions may reference outsiders (IDs that were never invited).
//     Such references are legal and harmless: they are kept by the store,
//     surfaced by Acquaintances and counted by Stats, but dropped when a
//     Snapshot is taken, because the clique predicates quantify over guests
//     only.
//   - Snapshot: an immutable, index-addressed boolean matrix view of the
//     party, captured under both read locks. All search algorithms run on
//     snapshots, never on the live store.
//
// Why:
//
//   - Separate the mutable social model (invite, introduce, forget, leave)
//     from the pure relation the algorithms consume.
//   - Deterministic enumeration: Guests, Acquaintances and Snapshot.IDs are
//     always sorted ascending, so searches and renderings are reproducible.
//
// Key Types:
//
//   - ID: int64 person identifier; negative values are rejected.
//   - Party: the store. Two sync.RWMutex locks (muGuests, muIntro) keep
//     roster and relation independently readable under concurrency.
//   - Option / WithStrictGuestList: constructor configuration.
//   - PartyStats: guest, introduction and outsider counters.
//   - Snapshot: read-only view with Len/IDs/IDAt/Index/Knows/KnowsAt.
//
// Complexity:
//
//   - Invite/HasGuest/Introduce/Forget/Knows: O(1) amortized
//   - Guests/Acquaintances:                   O(n log n) (sorting)
//   - Clone/Stats:                            O(V + E)
//   - Snapshot:                               O(V² + E)
//
// Errors:
//
//   - ErrInvalidID            negative guest ID supplied
//   - ErrPersonNotFound       operation referenced someone not on the list
//   - ErrAcquaintanceNotFound Forget for an introduction never recorded
package party
