// Package testfixtures holds small YAML graph fixtures shared across the
// module's test suites. Each fixture is embedded at build time and
// exposed both as raw text and as a ready-to-use resolved graph, so
// package tests can pick whichever form they need without duplicating
// YAML literals.
package testfixtures
