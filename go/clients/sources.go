package clients

// ExternalSource represents where the leaderboard view reads player data from
type ExternalSource string

const (
	// ExternalSourceUpstream calls the affiliate API directly
	ExternalSourceUpstream ExternalSource = "upstream"

	// ExternalSourceProxy goes through the local /api/leaderboard relay
	ExternalSourceProxy ExternalSource = "proxy"
)

// ExternalSourceConfig holds configuration for external sources
type ExternalSourceConfig struct {
	Source      ExternalSource `json:"source"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"` // Higher priority wins when no source is configured
}

// GetExternalSources returns all known external sources
func GetExternalSources() map[ExternalSource]ExternalSourceConfig {
	return map[ExternalSource]ExternalSourceConfig{
		ExternalSourceUpstream: {
			Source:      ExternalSourceUpstream,
			Name:        "Goated API",
			Description: "Referral leaderboard served by the affiliate provider",
			Priority:    100,
		},
		ExternalSourceProxy: {
			Source:      ExternalSourceProxy,
			Name:        "Leaderboard proxy",
			Description: "Local relay of the referral leaderboard",
			Priority:    50,
		},
	}
}

// ValidateExternalSource checks if the source is valid
func ValidateExternalSource(source ExternalSource) bool {
	_, exists := GetExternalSources()[source]
	return exists
}

// GetHighestPrioritySource returns the external source with highest priority
func GetHighestPrioritySource() ExternalSource {
	var highest ExternalSource
	var highestPriority int

	for source, config := range GetExternalSources() {
		if config.Priority > highestPriority {
			highest = source
			highestPriority = config.Priority
		}
	}

	return highest
}
