// Package demeserr defines the closed error taxonomy shared by every layer
// of the demes graph resolver and forward-time traversal engine.
//
// Every error returned across package boundaries is a *demeserr.Error
// carrying one of the Kind constants below, a human-readable message, and
// (optionally) a wrapped cause. Callers branch on error kind with
// errors.Is against the package-level Err* sentinels, never by comparing
// strings:
//
//	if errors.Is(err, demeserr.ErrEpoch) { ... }
//
// Resolution errors (Deme/Epoch/Migration/Pulse/Graph/Value) are fatal to
// the operation that produced them: resolution stops at the first offense
// and no partial graph is returned. Forward-time errors (Time,
// InvalidDemeSize, Internal) poison a *forward.Engine but never the
// underlying resolved graph, which remains valid and reusable.
package demeserr
