package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/domain"
)

//go:embed activities.yaml
var defaultCatalog []byte

type catalogFile struct {
	Activities []catalogEntry `yaml:"activities"`
}

type catalogEntry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadCatalog reads the activity catalog from path, falling back to the
// embedded default when path is empty. The result seeds the registry
// once at startup; the file is never re-read.
func LoadCatalog(path string) ([]domain.Activity, error) {
	raw := defaultCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read activity catalog: %w", err)
		}
		raw = data
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse activity catalog: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("activity catalog is empty")
	}

	seen := make(map[string]bool, len(file.Activities))
	activities := make([]domain.Activity, 0, len(file.Activities))
	for _, entry := range file.Activities {
		if err := entry.validate(); err != nil {
			return nil, err
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("activity %q: duplicate name in catalog", entry.Name)
		}
		seen[entry.Name] = true
		activities = append(activities, domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    entry.Participants,
		})
	}
	return activities, nil
}

func (e catalogEntry) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("activity with blank name in catalog")
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("activity %q: description is required", e.Name)
	}
	if strings.TrimSpace(e.Schedule) == "" {
		return fmt.Errorf("activity %q: schedule is required", e.Name)
	}
	if e.MaxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be positive", e.Name)
	}
	if len(e.Participants) > e.MaxParticipants {
		return fmt.Errorf("activity %q: seed roster exceeds max_participants", e.Name)
	}
	seen := make(map[string]bool, len(e.Participants))
	for _, email := range e.Participants {
		if strings.TrimSpace(email) == "" {
			return fmt.Errorf("activity %q: blank participant email", e.Name)
		}
		if seen[email] {
			return fmt.Errorf("activity %q: duplicate participant %s", e.Name, email)
		}
		seen[email] = true
	}
	return nil
}
