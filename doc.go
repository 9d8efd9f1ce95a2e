// Package gedist measures how far apart two labeled graphs are: graph
// edit distance engines, label dissimilarity strategies, and the plumbing
// around them.
//
// 🚀 What is gedist?
//
//	A generic, thread-safe-by-construction comparison toolkit built from:
//		• Core container: simple undirected graphs with typed vertex & edge labels
//		• Engines: exhaustive minimum-cost search and a linear-pass greedy blend
//		• Bounded scores: a normalizer that maps raw costs onto [0,1]
//		• Label strategies: Euclidean, Manhattan, Chebyshev, Minkowski, Cosine,
//		  Discrete, AbsDiff, Hamming, DTW
//		• Datasets: pairwise dissimilarity matrices on gonum, nearest neighbors
//		• Interchange: YAML graph documents in, Graphviz DOT out
//
// ✨ Why choose gedist?
//
//   - One interface – every engine is Diss(g1, g2) float64, swap freely
//   - Determinism – sorted enumeration, stabilized floats, reproducible runs
//   - Honest errors – sentinel-based construction checks, no panics on data
//   - Generic labels – molecules, meshes, feature vectors, plain strings
//
// Under the hood, everything is organized under six subpackages:
//
//	core/      — the labeled Graph[V, E] container and its invariants
//	labeldiss/ — label dissimilarity strategies shared by the engines
//	ged/       — Exact, Greedy and Normalizer comparison engines
//	builder/   — deterministic topology constructors for fixtures & demos
//	pairwise/  — dataset dissimilarity matrices (gonum mat.SymDense)
//	graphio/   — YAML loading/saving and DOT export
//
// Quick ASCII example:
//
//	    C1──C2──O        C1──O──C2
//
//	ethanol and dimethyl ether: same atoms, two bond rewires apart.
//
// Dive into examples/ for runnable scenarios: molecule comparison, shape
// datasets, YAML pipelines and the greedy-versus-exact trade-off.
//
//	go get github.com/katalvlaran/gedist
package gedist
