// Package deskew detects and corrects rotational misalignment of scanned
// document images.
//
// Detection is a brute-force search: every candidate angle in the configured
// range is tried, the grid is rotated by the candidate, a per-row projection
// profile is built, and the profile is scored. Text lines produce a sharply
// peaked profile exactly when the rotation cancels the skew, so the
// best-scoring candidate is the negative of the document's skew angle.
//
// # Determinism
//
// Candidates are evaluated concurrently, but each candidate works on its own
// rotated copy and writes into its own result slot; the final selection is a
// single sequential pass with a total tie-break order (score, then magnitude
// of rotation, then the more negative angle). Repeated runs over the same
// input and configuration therefore return bit-identical results regardless
// of worker count.
//
// # Quality Limitation
//
// The engine never reports "no line structure found". When the input has no
// periodic horizontal structure the winning score margin is small and the
// detected angle is essentially arbitrary within the search range; callers
// that care should inspect the returned score themselves.
package deskew
