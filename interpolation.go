/*
Package interpolation approximates sampled real functions by Newton interpolation
polynomials and measures the approximation error under uniform and Chebyshev
node placement.

The pipeline is: generate nodes (package split), sample the function at the nodes
(Apply), build the interpolant (package newton), refine the nodes (split.Subsplit),
sample both the function and the interpolant at the refined nodes, and compare
them (package metrics). Generate, Subdivide, NewTrace and ErrorTable chain these
steps for callers that render tables or figures.
*/
package interpolation

// Apply returns the values f(x[i]) for every node x[i], in the same order.
// Any error condition of f, such as an out-of-domain input, is the caller's concern.
func Apply(x []float64, f func(x float64) float64) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i] = f(x[i])
	}
	return
}
