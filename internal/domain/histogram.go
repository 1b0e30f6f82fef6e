package domain

import (
	m "github.com/mouse-blink/brot/internal/model"
)

// Histogram groups the escaped pixels of a rendering into at most buckets
// equal iteration ranges and returns them together with the number of
// inconclusive pixels. A rendering with a zero limit has no escaped pixels
// and yields no buckets.
func Histogram(r *m.Rendering, buckets int) ([]m.Bucket, int) {
	if buckets <= 0 {
		buckets = 8
	}

	if r.Limit <= 0 {
		return nil, len(r.Points)
	}

	if buckets > r.Limit {
		buckets = r.Limit
	}

	width := (r.Limit + buckets - 1) / buckets

	out := make([]m.Bucket, buckets)
	for i := range out {
		from := i * width
		out[i] = m.Bucket{From: from, To: min(from+width, r.Limit)}
	}

	inconclusive := 0

	for _, p := range r.Points {
		if !p.Escaped {
			inconclusive++
			continue
		}

		out[p.Iteration/width].Count++
	}

	return out, inconclusive
}
