// Package pfad is a Go rendition of "finding celebrities", chapter 9 of
// Bird's Pearls of Functional Algorithm Design: given a party and a
// non-symmetric "knows" relation, find the celebrity clique — the guests
// everybody knows, whose members know only each other.
//
// 🚀 What is pfad?
//
//	A thread-safe puzzle kit built from small, composable packages:
//		• Party building: invite guests, introduce them, snapshot the relation
//		• Searches: elimination fold (O(n²)), exhaustive subset scan, single celebrity
//		• Predicates: check any candidate set against the clique definition
//		• Builders: demo, complete, hermit, ring, planted-clique and random parties
//		• Rendering: Graphviz DOT and Mermaid drawings with the clique highlighted
//
// ✨ Why choose pfad?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, immutable snapshots, candidate hooks
//   - Honest results – "no celebrity clique" is an answer, never an error
//   - Extensible – functional options (WithContext, WithOnCandidate…) on every search
//
// Under the hood, everything is organized under five library subpackages
// and one command:
//
//	sets/          — tiny generic set backing the roster and the relation
//	party/         — Party, guest list, introductions, immutable Snapshot
//	celebrity/     — FindClique, FindCliqueExhaustive, FindCelebrity + predicates
//	builder/       — canned parties for demos, tests and benchmarks
//	viz/           — DOT & Mermaid emitters
//	cmd/celebrity/ — the demo CLI (solve & render)
//
// Quick ASCII example:
//
//	    4──►1◄──5
//	        ▲
//	        │
//	        6
//
//	guests 4, 5 and 6 all know guest 1, who knows nobody else, so
//	{1} is the celebrity clique.
//
// Dive into README.md for the full rules, party file formats and the CLI.
//
//	go get github.com/katalvlaran/pfad
package pfad
