// Package demesresolve turns a demesunresolved.Graph into a fully
// explicit, validated demesgraph.Graph. Resolution proceeds in five
// steps, each implemented in its own file: time units
// (resolve.go), default cascade (merge.go), deme/epoch inference
// (demes.go), migration symmetric expansion (migrations.go), and pulse
// default cascade plus stable sort (pulses.go).
//
// Builder lives in this package rather than demesunresolved so that its
// Resolve method can call Resolve directly: demesunresolved must not
// import demesresolve, since demesresolve already imports
// demesunresolved to consume its Graph as input.
package demesresolve
