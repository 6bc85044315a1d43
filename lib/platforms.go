package orbit

import (
	"fmt"
	"sort"

	"github.com/ZygmaCore/orbit/database"
	"github.com/ZygmaCore/orbit/model"
)

// LoadPlatforms returns all saved platforms, sorted by name
func LoadPlatforms(db *database.DB) (model.Platforms, error) {
	entries, err := db.GetAll(database.BucketPlatforms)
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms: %w", err)
	}

	platforms := make(model.Platforms, 0, len(entries))
	for key, data := range entries {
		var p model.Platform
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode platform %q: %w", key, err)
		}
		platforms = append(platforms, p)
	}

	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].Name < platforms[j].Name
	})

	return platforms, nil
}

// GetPlatform returns the platform saved under the given base URL, or nil
func GetPlatform(db *database.DB, baseURL string) (*model.Platform, error) {
	data, err := db.Get(database.BucketPlatforms, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var p model.Platform
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode platform %q: %w", baseURL, err)
	}
	return &p, nil
}

// SavePlatform persists a platform record keyed by its base URL
func SavePlatform(db *database.DB, p *model.Platform) error {
	if p.BaseURL == "" {
		return fmt.Errorf("platform base URL must not be empty")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal platform: %w", err)
	}
	if err := db.Set(database.BucketPlatforms, p.BaseURL, data); err != nil {
		return fmt.Errorf("failed to persist platform: %w", err)
	}
	return nil
}

// DeletePlatform removes a platform record by base URL
func DeletePlatform(db *database.DB, baseURL string) error {
	if err := db.Delete(database.BucketPlatforms, baseURL); err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	return nil
}
