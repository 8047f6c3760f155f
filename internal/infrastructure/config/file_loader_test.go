package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.bat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_MissingFile_IsConfigurationMissing(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "config.bat"))

	_, err := loader.Load()

	require.Error(t, err)
	assert.Equal(t, launch.ConfigurationMissing, launch.KindOf(err))
}

func TestFileLoader_ParsesBatchStyleFile(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"@echo off",
		"chcp 65001",
		"rem Teams webhook for the monitor",
		":: legacy comment style",
		"set TEAMS_WEBHOOK_URL=https://example.webhook.office.com/abc",
		"set MAIL_USER=ops@example.com",
		"set DB_FILE_PATH=navigation_warnings.db",
		"echo configuration loaded",
		"",
	}, "\r\n"))

	cfg, err := NewFileLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "https://example.webhook.office.com/abc", cfg.TeamsWebhookURL)
	assert.Equal(t, "ops@example.com", cfg.MailUser)
	assert.Equal(t, "navigation_warnings.db", cfg.DBFilePath)
}

func TestFileLoader_ParsesDotenvStyleFile(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"# Teams webhook for the monitor",
		`TEAMS_WEBHOOK_URL="https://example.webhook.office.com/abc"`,
		"TARGET_EMAIL=watch@example.com",
		"EXTRA_SOURCE=taiwan",
	}, "\n"))

	cfg, err := NewFileLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "https://example.webhook.office.com/abc", cfg.TeamsWebhookURL)
	assert.Equal(t, "watch@example.com", cfg.TargetEmail)
	assert.Equal(t, "taiwan", cfg.Extra["EXTRA_SOURCE"])
}

func TestFileLoader_PlaceholderSurvivesLoading(t *testing.T) {
	// Loading must not validate; the placeholder check is a separate step so
	// doctor can report it distinctly.
	path := writeConfig(t, "set TEAMS_WEBHOOK_URL="+launch.WebhookPlaceholder+"\n")

	cfg, err := NewFileLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, launch.WebhookPlaceholder, cfg.TeamsWebhookURL)
	assert.Equal(t, launch.ConfigurationIncomplete, launch.KindOf(cfg.Validate()))
}

func TestFileLoader_RoundTripsGeneratedDeclarations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Z][A-Z0-9_]{0,15}`), 1, 8, rapid.ID[string]).Draw(t, "keys")
		useSet := rapid.Bool().Draw(t, "useSet")

		values := make(map[string]string, len(keys))
		var lines []string
		for i, key := range keys {
			value := rapid.StringMatching(`[a-zA-Z0-9:/._\-]{1,30}`).Draw(t, fmt.Sprintf("value%d", i))
			values[key] = value
			if useSet {
				lines = append(lines, "set "+key+"="+value)
			} else {
				lines = append(lines, key+"="+value)
			}
		}

		dir, err := os.MkdirTemp("", "msalaunch-rapid")
		if err != nil {
			t.Fatalf("tempdir: %v", err)
		}
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "config.bat")
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		cfg, err := NewFileLoader(path).Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		got := map[string]string{}
		for k, v := range cfg.Extra {
			got[k] = v
		}
		for k, v := range map[string]string{
			launch.EnvTeamsWebhookURL: cfg.TeamsWebhookURL,
			launch.EnvMailUser:        cfg.MailUser,
			launch.EnvMailPassword:    cfg.MailPassword,
			launch.EnvTargetEmail:     cfg.TargetEmail,
			launch.EnvDBFilePath:      cfg.DBFilePath,
		} {
			if v != "" {
				got[k] = v
			}
		}

		for k, want := range values {
			if got[k] != want {
				t.Fatalf("key %s: got %q, want %q", k, got[k], want)
			}
		}
	})
}
