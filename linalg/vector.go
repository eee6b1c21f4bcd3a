// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Vector arithmetic (Add, Subtract, Multiply), list reductions
//     (ComponentwiseSum, VectorMean) and scalar reductions (Dot, SumOfSquares,
//     Magnitude, SquaredDistance, Distance).
//   - Every function returns a fresh result; inputs are read-only.
//
// Determinism & Performance:
//   - Fixed index order 0..n-1; no maps, no randomness.
//   - Derived reductions compose the primitive ones (Distance → SquaredDistance
//     → SumOfSquares → Dot) so there is exactly one summation loop to trust.

package linalg

import "math"

// Operation name constants for error wrapping.
const (
	opAdd              = "Add"
	opSubtract         = "Subtract"
	opComponentwiseSum = "ComponentwiseSum"
	opVectorMean       = "VectorMean"
	opDot              = "Dot"
	opSquaredDistance  = "SquaredDistance"
	opDistance         = "Distance"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Callers validate lengths first.
func addSub(a, b Vector, sign float64) Vector {
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] + sign*b[i]
	}

	return out
}

// Add returns the element-wise sum v1 + v2.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Add(v1, v2 Vector) (Vector, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	return addSub(v1, v2, 1), nil
}

// Subtract returns the element-wise difference v1 - v2.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Subtract(v1, v2 Vector) (Vector, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return nil, opErrorf(opSubtract, err)
	}

	return addSub(v1, v2, -1), nil
}

// Multiply scales every element of v by scalar. It has no failure mode.
func Multiply(scalar float64, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = scalar * x
	}

	return out
}

// ComponentwiseSum adds a list of equal-length vectors element by element.
// MAIN DESCRIPTION:
//   - out[j] = Σ_k vs[k][j].
//
// Implementation:
//   - Stage 1: reject an empty list (there is no length to build a result from).
//   - Stage 2: check every vector against len(vs[0]).
//   - Stage 3: accumulate into one zeroed buffer in list order.
//
// Errors:
//   - ErrEmptyInput for len(vs) == 0.
//   - ErrDimensionMismatch when any length differs from the first.
//
// Complexity:
//   - Time O(k*n), Space O(n).
func ComponentwiseSum(vs []Vector) (Vector, error) {
	if err := validateList(vs); err != nil {
		return nil, opErrorf(opComponentwiseSum, err)
	}

	return componentwiseSum(vs), nil
}

// validateList applies the list-reduction preconditions: non-empty, uniform length.
func validateList(vs []Vector) error {
	if len(vs) == 0 {
		return ErrEmptyInput
	}

	return ValidateUniformLen(vs)
}

// componentwiseSum is the unchecked kernel; vs passed validateList.
func componentwiseSum(vs []Vector) Vector {
	out := make(Vector, len(vs[0]))
	for _, v := range vs {
		for j, x := range v {
			out[j] += x
		}
	}

	return out
}

// VectorMean returns ComponentwiseSum(vs) scaled by 1/len(vs).
// Errors: same as ComponentwiseSum.
func VectorMean(vs []Vector) (Vector, error) {
	if err := validateList(vs); err != nil {
		return nil, opErrorf(opVectorMean, err)
	}

	return Multiply(1/float64(len(vs)), componentwiseSum(vs)), nil
}

// Dot returns Σ v1[i]*v2[i]. Empty vectors give 0.
// Errors: ErrDimensionMismatch when lengths differ.
func Dot(v1, v2 Vector) (float64, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return 0, opErrorf(opDot, err)
	}

	return dot(v1, v2), nil
}

// dot is the unchecked kernel behind Dot.
func dot(a, b Vector) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// SumOfSquares returns Dot(v, v). It cannot fail.
func SumOfSquares(v Vector) float64 {
	return dot(v, v)
}

// Magnitude returns the Euclidean norm sqrt(SumOfSquares(v)); always >= 0.
func Magnitude(v Vector) float64 {
	return math.Sqrt(SumOfSquares(v))
}

// SquaredDistance returns SumOfSquares(Subtract(v1, v2)).
// Errors: ErrDimensionMismatch when lengths differ.
func SquaredDistance(v1, v2 Vector) (float64, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return 0, opErrorf(opSquaredDistance, err)
	}

	return squaredDistance(v1, v2), nil
}

// squaredDistance is the unchecked kernel behind SquaredDistance and Distance.
func squaredDistance(a, b Vector) float64 {
	return SumOfSquares(addSub(a, b, -1))
}

// Distance returns the Euclidean distance sqrt(SquaredDistance(v1, v2)).
// Symmetric in its arguments.
func Distance(v1, v2 Vector) (float64, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return 0, opErrorf(opDistance, err)
	}

	return math.Sqrt(squaredDistance(v1, v2)), nil
}
