// Package filter provides the Gaussian blur used to feather selection masks.
//
// The blur is separable: a horizontal pass into a float32 scratch buffer
// followed by a vertical pass back into the tiles, giving O(w*h*r) work
// instead of O(w*h*r²). Pixels beyond the blurred region are treated as
// copies of the nearest edge pixel.
//
// A feather radius r is the distance at which the kernel weight falls to
// 1/255 of its peak, so the standard deviation is r / sqrt(2·ln 255).
package filter
