// Package forward converts a resolved demesgraph.Graph's backward time
// axis into a forward, generation-indexed traversal. TimeMapper
// (time.go) is the single conversion point between the two axes;
// Engine (engine.go) holds the mutable per-generation
// state buffers and the Fresh/AtGeneration/Errored state machine;
// squarematrix.go holds the contiguous row-major ancestry-proportion
// matrix; deme_size_history.go iterates a single deme's size across the
// whole model.
package forward
