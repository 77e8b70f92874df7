package demesvalue

// Tolerance is the absolute tolerance used throughout the resolver and
// forward engine for proportion and rate sum comparisons. Stored values
// stay as the user supplied them, except that the resolver divides the
// ancestry proportions of a deme with two or more ancestors by their sum.
const Tolerance = 1e-9
