package geom

import "github.com/chewxy/math32"

// CeilPow2 rounds n up to the next power of two. Inputs below 2 map to 1;
// exact powers of two are preserved (2^(floor(log2(n-1))+1)). Texture side
// lengths are sized with this so render targets stay power-of-two.
func CeilPow2(n int) int {
	if n < 2 {
		return 1
	}
	return 1 << (int(math32.Floor(math32.Log2(float32(n-1)))) + 1)
}
