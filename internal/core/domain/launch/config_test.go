package launch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewRunConfig_MapsKnownAndExtraKeys(t *testing.T) {
	cfg := NewRunConfig(map[string]string{
		"TEAMS_WEBHOOK_URL": "https://example.com/hook",
		"MAIL_USER":         "ops@example.com",
		"DB_FILE_PATH":      "warnings.db",
		"CUSTOM_FLAG":       "1",
	})

	assert.Equal(t, "https://example.com/hook", cfg.TeamsWebhookURL)
	assert.Equal(t, "ops@example.com", cfg.MailUser)
	assert.Equal(t, "warnings.db", cfg.DBFilePath)
	assert.Empty(t, cfg.MailPassword)
	assert.Equal(t, map[string]string{"CUSTOM_FLAG": "1"}, cfg.Extra)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name         string
		webhook      string
		expectError  bool
		expectedKind FailureKind
	}{
		{
			name:        "RealWebhook_ShouldPass",
			webhook:     "https://example.webhook.office.com/abc",
			expectError: false,
		},
		{
			name:         "EmptyWebhook_ShouldFail",
			webhook:      "",
			expectError:  true,
			expectedKind: ConfigurationIncomplete,
		},
		{
			name:         "PlaceholderWebhook_ShouldFail",
			webhook:      WebhookPlaceholder,
			expectError:  true,
			expectedKind: ConfigurationIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RunConfig{TeamsWebhookURL: tt.webhook}

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, KindOf(err))

				var le *Error
				require.True(t, errors.As(err, &le))
				assert.NotEmpty(t, le.Advice, "configuration failures should carry remediation advice")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunConfig_Validate_AcceptsAnyNonPlaceholderWebhook(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		webhook := rapid.StringMatching(`https://[a-z0-9.\-]{1,40}/[a-zA-Z0-9/\-_]{0,40}`).Draw(t, "webhook")
		if webhook == WebhookPlaceholder {
			return
		}

		cfg := RunConfig{TeamsWebhookURL: webhook}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("non-placeholder webhook %q rejected: %v", webhook, err)
		}
	})
}

func TestRunConfig_Environ(t *testing.T) {
	cfg := RunConfig{
		TeamsWebhookURL: "https://example.com/hook",
		MailUser:        "ops@example.com",
		Extra:           map[string]string{"CUSTOM_FLAG": "1"},
	}

	env := cfg.Environ()

	assert.Equal(t, []string{
		"CUSTOM_FLAG=1",
		"MAIL_USER=ops@example.com",
		"TEAMS_WEBHOOK_URL=https://example.com/hook",
	}, env, "empty values are skipped and order is deterministic")
}
