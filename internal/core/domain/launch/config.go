package launch

import (
	"fmt"
	"sort"
)

// WebhookPlaceholder is the documented sentinel left in a freshly copied
// configuration file. A webhook still equal to it means the operator never
// filled the file in, and the launch must not proceed.
const WebhookPlaceholder = "YOUR_TEAMS_WEBHOOK_URL_HERE"

// Configuration variable names as the target program reads them.
const (
	EnvTeamsWebhookURL = "TEAMS_WEBHOOK_URL"
	EnvMailUser        = "MAIL_USER"
	EnvMailPassword    = "MAIL_PASSWORD"
	EnvTargetEmail     = "TARGET_EMAIL"
	EnvDBFilePath      = "DB_FILE_PATH"
)

// RunConfig is the parsed configuration handed to the target program. It is
// an explicit record rather than process-global environment state; values
// cross into an environment table only at the exec boundary.
type RunConfig struct {
	TeamsWebhookURL string
	MailUser        string
	MailPassword    string
	TargetEmail     string
	DBFilePath      string

	// Extra holds declarations the launcher does not know about. They are
	// forwarded to the target untouched.
	Extra map[string]string
}

// NewRunConfig builds a RunConfig from raw KEY=VALUE declarations.
func NewRunConfig(values map[string]string) RunConfig {
	cfg := RunConfig{Extra: make(map[string]string)}
	for key, value := range values {
		switch key {
		case EnvTeamsWebhookURL:
			cfg.TeamsWebhookURL = value
		case EnvMailUser:
			cfg.MailUser = value
		case EnvMailPassword:
			cfg.MailPassword = value
		case EnvTargetEmail:
			cfg.TargetEmail = value
		case EnvDBFilePath:
			cfg.DBFilePath = value
		default:
			cfg.Extra[key] = value
		}
	}
	return cfg
}

// Validate checks that the operator completed the configuration. The webhook
// is the only required value; leaving it empty or equal to the documented
// placeholder aborts the launch before the target program runs.
func (c RunConfig) Validate() error {
	if c.TeamsWebhookURL == "" {
		return NewError(ConfigurationIncomplete,
			fmt.Sprintf("%s is not set in the configuration file", EnvTeamsWebhookURL)).
			WithAdvice("Edit the configuration file and set " + EnvTeamsWebhookURL + " to your Teams webhook URL.")
	}
	if c.TeamsWebhookURL == WebhookPlaceholder {
		return NewError(ConfigurationIncomplete,
			fmt.Sprintf("%s still has the placeholder value %q", EnvTeamsWebhookURL, WebhookPlaceholder)).
			WithAdvice("Replace the placeholder in the configuration file with your real Teams webhook URL.")
	}
	return nil
}

// Environ renders the configuration as KEY=VALUE pairs for the target
// process, in deterministic order.
func (c RunConfig) Environ() []string {
	values := map[string]string{
		EnvTeamsWebhookURL: c.TeamsWebhookURL,
		EnvMailUser:        c.MailUser,
		EnvMailPassword:    c.MailPassword,
		EnvTargetEmail:     c.TargetEmail,
		EnvDBFilePath:      c.DBFilePath,
	}
	for k, v := range c.Extra {
		values[k] = v
	}

	keys := make([]string, 0, len(values))
	for k, v := range values {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, values[k]))
	}
	return env
}
