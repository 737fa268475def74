package order

import (
	"iter"

	"github.com/katalvlaran/pairpath/domain"
)

// RowMajor iterates the domain of numFeeds feeds row by row.
//
// Complexity: O(n²).
func RowMajor(numFeeds int) iter.Seq[domain.Pair] {
	return func(yield func(domain.Pair) bool) {
		var x, y int
		for x = 0; x < numFeeds; x++ {
			for y = x; y < numFeeds; y++ {
				if !yield(domain.Pair{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Blocked iterates the domain in blockSize×blockSize tiles. Tiles are taken
// in row-major order over the upper triangle; points inside a tile are also
// taken in row-major order. Partial tiles at the border are clipped.
// blockSize < 1 is treated as 1, which degenerates to RowMajor.
//
// Complexity: O(n²).
func Blocked(numFeeds, blockSize int) iter.Seq[domain.Pair] {
	if blockSize < 1 {
		blockSize = 1
	}

	return func(yield func(domain.Pair) bool) {
		var bx, by, x, y int
		for bx = 0; bx < numFeeds; bx += blockSize {
			for by = bx; by < numFeeds; by += blockSize {
				xEnd := min(bx+blockSize, numFeeds)
				yEnd := min(by+blockSize, numFeeds)
				for x = bx; x < xEnd; x++ {
					for y = max(x, by); y < yEnd; y++ {
						if !yield(domain.Pair{X: x, Y: y}) {
							return
						}
					}
				}
			}
		}
	}
}

// Morton iterates the domain along the Z-order curve of the enclosing
// numFeeds×numFeeds square, skipping points below the diagonal and outside
// the square.
//
// Complexity: O(m) where m is the smallest power of four ≥ n².
func Morton(numFeeds int) iter.Seq[domain.Pair] {
	var side = 1
	for side < numFeeds {
		side <<= 1
	}

	return func(yield func(domain.Pair) bool) {
		var idx int
		for idx = 0; idx < side*side; idx++ {
			x, y := MortonDecode2D(idx)
			if y < x || y >= numFeeds {
				continue
			}
			if !yield(domain.Pair{X: x, Y: y}) {
				return
			}
		}
	}
}

// MortonDecode2D splits a Morton index into its (x, y) coordinates: even
// bits form x, odd bits form y.
func MortonDecode2D(idx int) (x, y int) {
	var bit uint
	for bit = 0; idx > 0; bit++ {
		x |= (idx & 1) << bit
		idx >>= 1
		y |= (idx & 1) << bit
		idx >>= 1
	}

	return x, y
}
