package testfixtures

import (
	_ "embed"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/yamlio"
)

// SingleInfiniteDeme is the smallest useful model: one deme of constant
// size, extant since the infinite past.
//
//go:embed yaml/single_infinite_deme.yaml
var SingleInfiniteDeme string

// MigrationPulseScenario is a three-deme model: two ancestral demes, an
// admixed descendant, a pulse, and symmetric continuous migration.
//
//go:embed yaml/migration_pulse_scenario.yaml
var MigrationPulseScenario string

// JouganousOutOfAfrica is a six-deme worked example: an ancestral
// population, an out-of-Africa bottleneck, and three sampled populations
// connected by continuous migration, approximating the demography
// published in Jouganous et al. (2017).
//
//go:embed yaml/jouganous_out_of_africa.yaml
var JouganousOutOfAfrica string

// MustResolve parses a fixture's YAML text into a fully resolved graph,
// panicking on error. Fixtures in this package are fixed at compile
// time, so a failure here means the fixture itself is broken, not that
// the caller passed bad input.
func MustResolve(yamlText string) *demesgraph.Graph {
	g, err := yamlio.Loads(yamlText)
	if err != nil {
		panic(err)
	}
	return g
}
