package patterns

// Stats reports bucket occupancy of a Table.
type Stats struct {
	Size         int `json:"size"`
	Buckets      int `json:"buckets"`
	UsedBuckets  int `json:"used_buckets"`
	LongestChain int `json:"longest_chain"`
}

// LoadFactor is the average number of entries per bucket.
func (s Stats) LoadFactor() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Buckets)
}

// Stats computes the current bucket occupancy.
func (t *Table) Stats() Stats {
	stats := Stats{Size: t.size, Buckets: Capacity}
	for i := range t.buckets {
		n := len(t.buckets[i])
		if n > 0 {
			stats.UsedBuckets++
		}
		stats.LongestChain = max(stats.LongestChain, n)
	}
	return stats
}
