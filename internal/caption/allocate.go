package caption

import "math"

// allocate distributes total across weights proportionally, then bounds every
// share to [lo, hi] by water-filling: the side with the larger violation is
// pinned, the rest is redistributed over the free units, repeat until stable.
// The last unit absorbs whatever residual is left so the sum is exactly total.
func allocate(weights []float64, total, lo, hi float64) []float64 {
	n := len(weights)
	out := make([]float64, n)
	if n == 1 {
		out[0] = total
		return out
	}

	if hi <= 0 {
		hi = math.Inf(1)
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	// a floor that cannot fit n times would push later chunks to zero length
	if lo*float64(n) > total {
		lo = total / float64(n)
	}

	pinned := make([]bool, n)
	for {
		remaining := total
		var free float64
		for i, w := range weights {
			if pinned[i] {
				remaining -= out[i]
			} else {
				free += w
			}
		}
		if free == 0 {
			break
		}

		var under, over float64
		for i, w := range weights {
			if pinned[i] {
				continue
			}
			out[i] = remaining * w / free
			if out[i] < lo {
				under += lo - out[i]
			} else if out[i] > hi {
				over += out[i] - hi
			}
		}
		if under == 0 && over == 0 {
			break
		}

		for i := range weights {
			if pinned[i] {
				continue
			}
			if under >= over && out[i] < lo {
				out[i], pinned[i] = lo, true
			} else if under < over && out[i] > hi {
				out[i], pinned[i] = hi, true
			}
		}
	}

	var sum float64
	for _, d := range out[:n-1] {
		sum += d
	}
	out[n-1] = total - sum
	return out
}
