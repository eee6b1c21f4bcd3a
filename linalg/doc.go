// Package linalg provides vector and matrix primitives as plain Go slices.
//
// 🚀 What is in here?
//
//	Vector arithmetic  : Add, Subtract, Multiply
//	List reductions    : ComponentwiseSum, VectorMean
//	Scalar reductions  : Dot, SumOfSquares, Magnitude, SquaredDistance, Distance
//	Matrix queries     : Shape, Row, Col
//	Matrix construction: NewMatrix, MakeMatrix, Identity
//	Debug output       : Fprint, Matrix.String
//	gonum interop      : ToDense, FromDense
//
// ✨ Guarantees:
//
//   - Value semantics: inputs are never modified; every result is a fresh slice.
//   - No panics on user input: length or index problems come back as sentinel
//     errors (ErrDimensionMismatch, ErrOutOfRange, ...) matched via errors.Is.
//   - Row-major convention: MakeMatrix(rows, cols, fn) calls fn(row, col).
//   - Stateless: every function is safe for concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecstat/linalg"
//
//	sum, err := linalg.Add(linalg.Vector{1, 2}, linalg.Vector{3, 4}) // [4 6]
//	if err != nil {
//	  // errors.Is(err, linalg.ErrDimensionMismatch)
//	}
//	id, _ := linalg.Identity(3)
//	fmt.Print(id)
//
// Performance:
//
//	Straight loops, O(n) per vector op and O(rows*cols) per matrix build.
//	For factorizations or large data, convert with ToDense and use gonum.
package linalg
