// Package demes is your in-memory toolkit for building, resolving, and
// forward-simulating population demographic models in Go.
//
// 🚀 What is demes?
//
//	A layered, zero-surprises library that brings together:
//
//	  • An unresolved model + builder: describe demes, epochs, migrations
//	    and pulses the way a human writes them, with defaults left implicit
//	  • A resolver: fills in every default and cross-reference, producing
//	    a fully explicit, immutable graph
//	  • A forward-time traversal engine: walk that graph generation by
//	    generation, tracking deme sizes, ancestry proportions, and
//	    selfing/cloning rates as a single-owner state machine
//	  • Textual load/serialise: read and write the same model as YAML or
//	    JSON, sharing one tree-walking layer across both formats
//
// ✨ Why choose demes?
//
//   - Explicit          — the resolver turns implicit defaults into a
//     graph with nothing left to infer
//   - Single-owner      — the forward engine's mutable state is never
//     shared without cloning; no locks, no surprises
//   - Extensible        — a programmatic builder sits alongside the YAML
//     and JSON loaders for callers who'd rather construct a model in code
//   - Pure Go           — no cgo
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	demesvalue/    — validated scalar kinds (Time, DemeSize, Proportion, ...)
//	demesunresolved/ — the unresolved model
//	demesresolve/  — the resolver that turns an unresolved model into a graph, and the builder
//	demesgraph/    — the fully resolved, immutable graph
//	forward/       — the backward/forward time mapper and traversal engine
//	yamlio/        — YAML and JSON load/serialise
//	demeserr/      — the shared error taxonomy
//	cmd/demes/     — a small CLI wrapping validate/resolve/forward/example
//
// Quick ASCII example, an out-of-Africa-style split:
//
//	    ancestral
//	        │
//	       AMH
//	      /    \
//	   YRI      OOA
//	           /    \
//	        CEU      CHB
//
//	six demes, two splits, and continuous migration between the tips.
//
// See DESIGN.md for the grounding behind each package's choices.
package demes
