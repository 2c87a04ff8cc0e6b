// Package unrelated selects a maximal set of mutually unrelated samples from
// a genotyped cohort while keeping as many cases as possible.
//
// Two samples are related when their kinship coefficient reaches pihat/2.
// Related samples form an undirected graph. Selection walks three tiers in
// priority order (cases, controls, samples of unknown status). Each tier
// first accepts pool members with no related pool member, then repeatedly
// accepts the member with the fewest related pool members, breaking ties by
// fewer remaining relatives and then by cohort order. Accepting a sample
// removes all of its relatives from the graph.
//
// Layout:
//
//	core/      thread-safe undirected graph with registration order
//	bfs/       breadth-first traversal and kin-group components
//	kinship/   pair filtering, graph construction, relationship degrees
//	selector/  the tiered greedy selection
//	pheno/     phenotype records and case/control/unknown classification
//	dataset/   readers and writers for sample, kinship and phenotype files
//	config/    TOML run configuration
//	pipeline/  one end-to-end run with logging and a run report
//	cmd/unrelated  command-line entry point
//
// Example, a case and a control related to each other plus one unrelated
// control:
//
//	case1 ─── ctrl1      ctrl2
//
// selects case1, then ctrl2 as strictly unrelated.
package unrelated
