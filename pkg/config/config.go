package config

import (
	"sort"
	"time"
)

// Section names. Templates, items and users are required.
const (
	SectionTemplates = "templates"
	SectionItems     = "items"
	SectionUsers     = "users"
	SectionTransport = "transport"
	SectionOptions   = "options"
)

// RequiredSections must be present for a configuration to be usable.
var RequiredSections = []string{SectionTemplates, SectionItems, SectionUsers}

// Config is the validated-shape configuration handed to the registry.
// Entries whose shape could not be decoded are listed in Malformed rather
// than failing the load.
type Config struct {
	Templates map[string]TemplateSpec
	Items     map[string]ItemSpec
	Users     map[string][]string

	Transport Transport `koanf:"transport"`
	Options   Options   `koanf:"options"`

	// Path is the file the configuration was read from, empty when built in memory.
	Path string

	Malformed []Malformed
}

// TemplateSpec is a template as written in the configuration. Either Body
// or BodyFile is used; BodyFile wins when both are set.
type TemplateSpec struct {
	Subject  string `koanf:"subject" toml:"subject"`
	Body     string `koanf:"body" toml:"body,omitempty"`
	BodyFile string `koanf:"body_file" toml:"body_file,omitempty"`
}

// ItemSpec is an item as written in the configuration.
type ItemSpec struct {
	Conditions []string `koanf:"conditions" toml:"conditions"`
	Template   string   `koanf:"template" toml:"template"`
}

// Transport selects and configures the mail transport.
type Transport struct {
	Kind    string        `koanf:"kind" validate:"oneof=smtp ses"`
	From    string        `koanf:"from" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
	// Recipients is "bcc" to hide a group's addresses from each other or
	// "to" to list them all in the To header.
	Recipients string `koanf:"recipients" validate:"omitempty,oneof=bcc to"`
	SMTP       SMTP   `koanf:"smtp"`
	SES        SES    `koanf:"ses"`
}

// SMTP holds SMTP server settings.
type SMTP struct {
	Host               string `koanf:"host" validate:"required,hostname|ip"`
	Port               int    `koanf:"port" validate:"min=1,max=65535"`
	Username           string `koanf:"username"`
	Password           string `koanf:"password" validate:"required_with=Username"`
	SSL                bool   `koanf:"ssl"`
	InsecureSkipVerify bool   `koanf:"insecure_skip_verify"`
}

// SES holds AWS SES settings. Empty keys fall back to the default AWS
// credential chain.
type SES struct {
	Region           string `koanf:"region" validate:"required"`
	AccessKeyID      string `koanf:"access_key_id" validate:"required_with=SecretAccessKey"`
	SecretAccessKey  string `koanf:"secret_access_key" validate:"required_with=AccessKeyID"`
	ConfigurationSet string `koanf:"configuration_set"`
}

// Options tune building and dispatch.
type Options struct {
	GeneratePlaintext bool   `koanf:"generate_plaintext"`
	TemplateDir       string `koanf:"template_dir"`
	Sentinel          string `koanf:"sentinel"`
	Workers           int    `koanf:"workers" validate:"gte=0"`
}

// Malformed records a configuration entry whose shape was wrong.
type Malformed struct {
	Section string
	ID      string
	Err     error
}

// TemplateIDs returns template ids in sorted order.
func (c *Config) TemplateIDs() []string { return sortedKeys(c.Templates) }

// ItemIDs returns item ids in sorted order.
func (c *Config) ItemIDs() []string { return sortedKeys(c.Items) }

// UserEmails returns user identities in sorted order. This is the order
// users are matched and grouped in.
func (c *Config) UserEmails() []string { return sortedKeys(c.Users) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
