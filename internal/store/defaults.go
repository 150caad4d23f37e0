package store

import (
	"time"

	"livetv/internal/models"
)

// DefaultChannels is the built-in channel set, used when both the backend and
// the seed document are unavailable.
func DefaultChannels() []models.Channel {
	now := time.Now().UTC()
	return []models.Channel{
		{
			ID:          1,
			Name:        "Lofi Girl",
			URL:         "https://www.youtube.com/embed/jfKfPfyJRdk",
			Type:        models.TypeYouTube,
			Category:    "music",
			Description: "24/7 lofi hip hop radio - beats to relax/study to",
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Name:        "NASA Live",
			URL:         "https://www.youtube.com/embed/21X5lGlDOfg",
			Type:        models.TypeYouTube,
			Category:    "education",
			Description: "NASA's official live stream from the International Space Station",
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "BBC World News",
			URL:         "https://www.youtube.com/embed/HN_2I4W2g14",
			Type:        models.TypeYouTube,
			Category:    "news",
			Description: "24/7 international news coverage",
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          4,
			Name:        "Relaxing Nature",
			URL:         "https://www.youtube.com/embed/4KZ_1d5Sghc",
			Type:        models.TypeYouTube,
			Category:    "entertainment",
			Description: "Beautiful nature scenes with relaxing music",
			Status:      models.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
