// Package vecstat is a small numeric toolkit: vector and matrix building
// blocks plus the descriptive statistics built on top of them.
//
// 🚀 What is inside?
//
//	A pure-Go, side-effect-free library that brings together:
//		• Vectors: add, subtract, scale, dot products, norms, distances
//		• Matrices: shape, rows, columns, generator-based construction, identity
//		• Statistics: mean, median, quantiles, mode, range, variance,
//		  standard deviation, IQR, covariance, correlation
//
// ✨ Why choose vecstat?
//
//   - Plain slices in, fresh slices out: nothing you pass in is modified
//   - Errors, not panics: sentinel errors matched with errors.Is
//   - Stateless: safe to call from any number of goroutines
//   - gonum-ready: hand a matrix to gonum/mat when you need factorizations
//
// Under the hood, everything is organized under two subpackages:
//
//	linalg/: Vector and Matrix types and their arithmetic
//	stats/ : descriptive statistics over []float64, built on linalg
//
//	go get github.com/katalvlaran/vecstat
package vecstat
