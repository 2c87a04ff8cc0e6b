// Package kinship turns a population and a table of pairwise kinship
// coefficients into a relatedness graph.
//
// What
//
//   - Build keeps pairs whose two endpoints belong to the population and whose
//     kinship is at least the threshold, and returns the resulting core.Graph
//     together with the strictly unrelated members (those in no retained pair).
//   - ThresholdFromPiHat converts a PI_HAT cut-off (2 × kinship) to a kinship cut-off.
//   - Classify/Degree name the relationship a kinship value implies.
//   - Summarize reports count, min, max, mean, median and a per-degree count.
//
// Determinism
//
//	Related individuals are registered in the graph in population order.
//	Downstream selection relies on that order for its final tie-break.
//
// PI_HAT reference
//
//	PI_HAT   kinship   relationship
//	1        0.5       duplicates / identical twins
//	0.5      0.25      first degree (parents, children, siblings)
//	0.25     0.125     second degree (grandparents, aunts, half-siblings)
//	0.125    0.0625    third degree (first cousins)
//	0.0625   0.03125   first cousins once removed
//	0.03125  0.015625  second cousins
//
// Errors
//
//   - ErrBadThreshold     threshold is NaN, infinite or negative.
//   - ErrEmptyID          empty ID in the population or a pair.
//   - ErrSelfPair         a retained pair joins an individual to itself.
//   - ErrOptionViolation  invalid Option.
package kinship
