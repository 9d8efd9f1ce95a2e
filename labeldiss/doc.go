// SPDX-License-Identifier: MIT

// Package labeldiss provides the pluggable label-dissimilarity strategies
// consumed by the gedist comparison engines.
//
// 🚀 What is a label dissimilarity?
//
//	A pure, total, nonnegative function diss(a, b) over two labels of the
//	same kind. Graph edit distance never inspects labels itself; it charges
//	substitution costs through one of these strategies, so the catalogue
//	below decides what "similar" means for your vertices and edges:
//	  • numeric feature vectors  → Euclidean, Manhattan, Chebyshev,
//	    Minkowski(p), Cosine
//	  • categorical labels       → Discrete (0/1 over any comparable type)
//	  • scalar labels            → AbsDiff
//	  • strings                  → Hamming
//	  • time series / sequences  → DTW (warping-invariant alignment)
//
// ✨ Key properties:
//   - single-method interface (Dissimilarity[T]) with a Func adapter, the
//     http.HandlerFunc pattern; no hierarchies, no registration
//   - vector measures delegate to gonum (floats.Distance, floats.Dot,
//     floats.Norm); equal dimension is a caller precondition
//   - every measure is stateless and safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gedist/labeldiss"
//
//	var vd labeldiss.Dissimilarity[[]float64] = labeldiss.Euclidean
//	d := vd.Diss([]float64{0, 0}, []float64{3, 4}) // 5
//
//	// custom measure from a closure:
//	caseless := labeldiss.Func[string](func(a, b string) float64 {
//	    if strings.EqualFold(a, b) { return 0 }
//	    return 1
//	})
//
// Bounded-cost note: the ged.Normalizer guarantees a [0,1] result only when
// the strategies it runs over are themselves bounded by 1 (Discrete is;
// Euclidean over unit vectors is; raw DTW usually is not).
//
// See package ged for the engines that consume these strategies.
package labeldiss
