package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, ":8000", cfg.HTTPAddress)
	require.Empty(t, cfg.ActivitiesFile)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadCatalogEmbeddedDefault(t *testing.T) {
	activities, err := LoadCatalog("")
	require.NoError(t, err)
	require.NotEmpty(t, activities)

	byName := make(map[string]int, len(activities))
	for i, activity := range activities {
		byName[activity.Name] = i
	}
	require.Contains(t, byName, "Chess Club")

	chess := activities[byName["Chess Club"]]
	require.Equal(t, 12, chess.MaxParticipants)
	require.Contains(t, chess.Participants, "daniel@mergington.edu")
	require.NotEmpty(t, chess.Description)
	require.NotEmpty(t, chess.Schedule)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := writeCatalog(t, `
activities:
  - name: Robotics Club
    description: Build robots
    schedule: Mondays, 3:30 PM - 5:00 PM
    max_participants: 8
    participants:
      - zoe@mergington.edu
`)
	activities, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Robotics Club", activities[0].Name)
	require.Equal(t, []string{"zoe@mergington.edu"}, activities[0].Participants)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCatalogRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"blank name": `
activities:
  - name: ""
    description: d
    schedule: s
    max_participants: 5
`,
		"missing description": `
activities:
  - name: A
    schedule: s
    max_participants: 5
`,
		"zero capacity": `
activities:
  - name: A
    description: d
    schedule: s
    max_participants: 0
`,
		"roster over capacity": `
activities:
  - name: A
    description: d
    schedule: s
    max_participants: 1
    participants: [a@x.com, b@x.com]
`,
		"duplicate participant": `
activities:
  - name: A
    description: d
    schedule: s
    max_participants: 5
    participants: [a@x.com, a@x.com]
`,
		"duplicate activity": `
activities:
  - name: A
    description: d
    schedule: s
    max_participants: 5
  - name: A
    description: d
    schedule: s
    max_participants: 5
`,
		"empty catalog": `
activities: []
`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, body))
			require.Error(t, err)
		})
	}
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
