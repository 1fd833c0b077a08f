package garden

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes garden retrieval and tree planting for HTTP handlers.
type Store interface {
	Snapshot() Snapshot
	PlantTree(ventCount int) Tree
	Stats() Stats
}

// MemoryStore implements Store in memory; the product keeps no
// authoritative server-side garden state, so seeded data plus
// process-lifetime mutations are sufficient.
type MemoryStore struct {
	mu           sync.RWMutex
	trees        []Tree
	impact       Impact
	achievements []Achievement
	stats        Stats
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied snapshot
// and community stats.
func NewMemoryStore(snapshot Snapshot, stats Stats) *MemoryStore {
	return &MemoryStore{
		trees:        append([]Tree(nil), snapshot.Trees...),
		impact:       snapshot.Impact,
		achievements: append([]Achievement(nil), snapshot.Achievements...),
		stats:        stats,
	}
}

// Snapshot returns a copy of the current garden view.
func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Trees:        append([]Tree(nil), s.trees...),
		Impact:       s.impact,
		Achievements: append([]Achievement(nil), s.achievements...),
	}
}

// PlantTree adds a fresh sapling and returns it.
func (s *MemoryStore) PlantTree(ventCount int) Tree {
	if ventCount <= 0 {
		ventCount = 10
	}

	tree := Tree{
		ID:          uuid.NewString(),
		Type:        "sapling",
		PlantedDate: time.Now().UTC().Format(time.RFC3339),
		VentCount:   ventCount,
		Location:    "Growing...",
	}

	s.mu.Lock()
	s.trees = append(s.trees, tree)
	s.stats.TreesPlanted++
	s.mu.Unlock()

	return tree
}

// Stats returns the community stats with a fresh timestamp.
func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := s.stats
	stats.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return stats
}

// Seed provides the demo garden the product ships with.
func Seed() Snapshot {
	return Snapshot{
		Trees: []Tree{
			{
				ID:          "1",
				Type:        "mature",
				PlantedDate: "2024-05-15T00:00:00.000Z",
				VentCount:   10,
				Location:    "Amazon Rainforest, Brazil",
			},
			{
				ID:          "2",
				Type:        "young",
				PlantedDate: "2024-05-25T00:00:00.000Z",
				VentCount:   10,
				Location:    "Pacific Northwest, USA",
			},
			{
				ID:          "3",
				Type:        "sapling",
				PlantedDate: "2024-06-05T00:00:00.000Z",
				VentCount:   7,
				Location:    "Growing...",
			},
		},
		Impact: Impact{
			CO2Absorbed:           156.7,
			OxygenProduced:        234.5,
			BiodiversitySupported: 47,
		},
		Achievements: []Achievement{
			{
				ID:          "forest_guardian",
				Name:        "Forest Guardian",
				Description: "Planted your first tree",
				Unlocked:    true,
				UnlockedAt:  "2024-05-15T00:00:00.000Z",
			},
			{
				ID:          "eco_warrior",
				Name:        "Eco Warrior",
				Description: "3 trees and counting",
				Unlocked:    true,
				UnlockedAt:  "2024-06-05T00:00:00.000Z",
			},
			{
				ID:          "climate_champion",
				Name:        "Climate Champion",
				Description: "Plant 10 trees",
				Unlocked:    false,
				Progress:    3,
				Target:      10,
			},
		},
	}
}

// SeedStats provides the demo community stats.
func SeedStats() Stats {
	return Stats{
		TotalUsers:          1247,
		TotalVents:          8934,
		TreesPlanted:        893,
		CO2Absorbed:         2.1,
		OxygenProduced:      1.6,
		CountriesImpacted:   12,
		MoodImprovementRate: 73,
		TopMoods: map[string]int{
			"anxious": 34,
			"sad":     28,
			"happy":   22,
			"neutral": 16,
		},
		EnvironmentalImpact: EnvironmentalImpact{
			EstimatedCarbonOffset: "2.1 tons CO2",
			BiodiversitySupport:   "47 wildlife habitats",
			ReforestationAreas: []string{
				"Amazon Basin",
				"Pacific Northwest",
				"Southeast Asia",
			},
		},
	}
}
