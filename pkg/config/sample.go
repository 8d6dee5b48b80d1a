package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

type sampleSMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username" comment:"Leave username empty for unauthenticated relays"`
	Password string `toml:"password" comment:"Prefer EMAILNOTIFY_TRANSPORT__SMTP__PASSWORD or a .env file"`
	SSL      bool   `toml:"ssl"`
}

type sampleTransport struct {
	Kind       string     `toml:"kind" comment:"smtp or ses"`
	From       string     `toml:"from"`
	Timeout    string     `toml:"timeout"`
	Recipients string     `toml:"recipients" comment:"bcc hides subscribers from each other, to lists them all"`
	SMTP       sampleSMTP `toml:"smtp"`
}

type sampleOptions struct {
	GeneratePlaintext bool   `toml:"generate_plaintext" comment:"Add a text/plain part derived from the HTML body"`
	TemplateDir       string `toml:"template_dir" comment:"Base directory for body_file, relative to this file"`
	Sentinel          string `toml:"sentinel" comment:"Replaces arguments a template needs but the invocation did not supply"`
}

type sampleFile struct {
	Transport sampleTransport         `toml:"transport"`
	Options   sampleOptions           `toml:"options"`
	Templates map[string]TemplateSpec `toml:"templates" comment:"Placeholders are positional: {0} is the first argument"`
	Items     map[string]ItemSpec     `toml:"items" comment:"Conditions are regular expressions matched at the start of the argument at the same position; \"\" accepts anything"`
	Users     map[string][]string     `toml:"users" comment:"Each user receives the first listed item that matches"`
}

// Sample returns a starter configuration in TOML.
func Sample() ([]byte, error) {
	sample := sampleFile{
		Transport: sampleTransport{
			Kind:       "smtp",
			From:       "Alerts <alerts@example.com>",
			Timeout:    "30s",
			Recipients: "bcc",
			SMTP: sampleSMTP{
				Host: "smtp.example.com",
				Port: 587,
			},
		},
		Options: sampleOptions{
			GeneratePlaintext: true,
			TemplateDir:       "templates",
			Sentinel:          "[NO DATA]",
		},
		Templates: map[string]TemplateSpec{
			"disk": {
				Subject: "Disk {0} on {2} at {1}",
				Body:    "<p>Volume <b>{0}</b> on {2} is {1} full.</p>",
			},
			"generic": {
				Subject: "Notification: {0}",
				Body:    "<p>{0} {1} {2}</p>",
			},
		},
		Items: map[string]ItemSpec{
			"disk-critical": {Conditions: []string{"", "9[0-9]%|100%"}, Template: "disk"},
			"any":           {Conditions: []string{}, Template: "generic"},
		},
		Users: map[string][]string{
			"ops@example.com": {"disk-critical", "any"},
			"dev@example.com": {"any"},
		},
	}

	var buf bytes.Buffer
	buf.WriteString("# emailnotify configuration\n#\n# Usage: emailnotify send -- ARG...\n\n")
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(sample); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render sample configuration")
	}
	return buf.Bytes(), nil
}

// WriteSample writes Sample to path. An existing file is only replaced
// when force is set.
func WriteSample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, "%s already exists", path).WithDetail("path", path)
	}

	content, err := Sample()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}
