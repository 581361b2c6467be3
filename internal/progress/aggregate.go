package progress

import (
	"math"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
)

// Stats summarizes a profile for the progress screen.
type Stats struct {
	Collected        int
	Total            int
	Percent          int
	Attempts         int
	HintsUsed        int
	CompletedRegions int
	Regions          int
}

// RegionStats is the per-region view of progress.
type RegionStats struct {
	Region    catalog.Region
	Collected int
	Total     int
	Percent   int
}

// percent is n/d as a whole percentage, halves rounded up.
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}

func (s *Store) collectedLocked() int {
	n := 0
	for _, fp := range s.fruits {
		if fp.Collected {
			n++
		}
	}
	return n
}

// CollectedCount returns how many fruits are collected.
func (s *Store) CollectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectedLocked()
}

// TotalProgressPercent is the share of catalog.TotalFruits collected, 0-100.
// The denominator is fixed even if the map holds fewer entries.
func (s *Store) TotalProgressPercent() int {
	return percent(s.CollectedCount(), catalog.TotalFruits)
}

// IsVictory reports whether every fruit has been collected.
func (s *Store) IsVictory() bool {
	return s.TotalProgressPercent() == 100
}

// RegionCollected returns collected and total fruit counts for a region.
// Both are zero for an unknown region.
func (s *Store) RegionCollected(regionID int) (collected, total int) {
	region, ok := s.catalog.Region(regionID)
	if !ok {
		return 0, 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range region.Fruits {
		if s.fruits[f.ID].Collected {
			collected++
		}
	}
	return collected, len(region.Fruits)
}

// RegionProgressPercent returns a region's completion, 0 for unknown regions.
func (s *Store) RegionProgressPercent(regionID int) int {
	collected, total := s.RegionCollected(regionID)
	return percent(collected, total)
}

// Regions returns progress for every region in catalog order.
func (s *Store) Regions() []RegionStats {
	regions := s.catalog.Regions()
	out := make([]RegionStats, 0, len(regions))
	for _, r := range regions {
		collected, total := s.RegionCollected(r.ID)
		out = append(out, RegionStats{
			Region:    r,
			Collected: collected,
			Total:     total,
			Percent:   percent(collected, total),
		})
	}
	return out
}

// CompletedRegions counts regions at 100%.
func (s *Store) CompletedRegions() int {
	n := 0
	for _, r := range s.Regions() {
		if r.Total > 0 && r.Collected == r.Total {
			n++
		}
	}
	return n
}

// Stats returns the overall summary.
func (s *Store) Stats() Stats {
	st := Stats{
		Total:            catalog.TotalFruits,
		CompletedRegions: s.CompletedRegions(),
		Regions:          len(s.catalog.Regions()),
	}

	s.mu.RLock()
	for _, fp := range s.fruits {
		if fp.Collected {
			st.Collected++
		}
		st.Attempts += fp.Attempts
		st.HintsUsed += fp.HintsUsed
	}
	s.mu.RUnlock()

	st.Percent = percent(st.Collected, st.Total)
	return st
}
