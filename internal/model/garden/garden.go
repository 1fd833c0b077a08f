package garden

// Tree is one virtual tree grown by venting.
type Tree struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	PlantedDate string `json:"plantedDate"`
	VentCount   int    `json:"ventCount"`
	Location    string `json:"location"`
}

// Impact summarizes the notional environmental effect of the garden.
type Impact struct {
	CO2Absorbed           float64 `json:"co2Absorbed"`
	OxygenProduced        float64 `json:"oxygenProduced"`
	BiodiversitySupported int     `json:"biodiversitySupported"`
}

// Achievement is a gamification milestone.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
	Progress    int    `json:"progress,omitempty"`
	Target      int    `json:"target,omitempty"`
}

// Snapshot is the full garden view served to the client.
type Snapshot struct {
	Trees        []Tree        `json:"trees"`
	Impact       Impact        `json:"impact"`
	Achievements []Achievement `json:"achievements"`
}

// EnvironmentalImpact is the marketing-facing slice of community stats.
type EnvironmentalImpact struct {
	EstimatedCarbonOffset string   `json:"estimatedCarbonOffset"`
	BiodiversitySupport   string   `json:"biodiversitySupport"`
	ReforestationAreas    []string `json:"reforestationAreas"`
}

// Stats is the community-wide snapshot served by the stats endpoint.
type Stats struct {
	TotalUsers          int                 `json:"totalUsers"`
	TotalVents          int                 `json:"totalVents"`
	TreesPlanted        int                 `json:"treesPlanted"`
	CO2Absorbed         float64             `json:"co2Absorbed"`
	OxygenProduced      float64             `json:"oxygenProduced"`
	CountriesImpacted   int                 `json:"countriesImpacted"`
	MoodImprovementRate int                 `json:"moodImprovementRate"`
	LastUpdated         string              `json:"lastUpdated"`
	TopMoods            map[string]int      `json:"topMoods"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmentalImpact"`
}
