package registry

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/arthur-debert/emailnotify/pkg/rules"
	"github.com/arthur-debert/emailnotify/pkg/template"
)

// Registry is the built, read-only structure the match engine runs on.
type Registry struct {
	templates *Store[*template.Template]
	items     *Store[*rules.Item]
	users     []*rules.User
}

// BuildOptions carries values resolved once at startup.
type BuildOptions struct {
	// BaseDir resolves relative body_file references.
	BaseDir string
}

// Build turns cfg into templates, items and users. It never fails as a
// whole: every invalid entity is dropped and reported, and the rest is
// returned. Templates and items are built in sorted id order and users in
// sorted email order so the result does not depend on map iteration.
func Build(cfg *config.Config, opts BuildOptions) (*Registry, *Report) {
	logger := logging.GetLogger("registry")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	reg := &Registry{
		templates: NewStore[*template.Template](),
		items:     NewStore[*rules.Item](),
	}
	report := &Report{}

	for _, m := range cfg.Malformed {
		report.add(SeverityError, entityFor(m.Section), m.ID, "", asNotifyError(m.Err, errors.ErrConfigParse))
	}

	for _, id := range cfg.TemplateIDs() {
		spec := cfg.Templates[id]
		tmpl, err := buildTemplate(id, spec, opts.BaseDir)
		if err != nil {
			report.add(SeverityError, EntityTemplate, id, "", err)
			continue
		}
		if err := reg.templates.Register(id, tmpl); err != nil {
			report.add(SeverityError, EntityTemplate, id, "",
				errors.Wrapf(err, errors.GetErrorCode(err), "template %q not registered", id))
		}
	}

	for _, id := range cfg.ItemIDs() {
		spec := cfg.Items[id]
		tmpl, ok := reg.templates.Lookup(spec.Template)
		if !ok {
			report.add(SeverityWarning, EntityItem, id, spec.Template,
				errors.Newf(errors.ErrDanglingReference, "item %s references unknown template %q", id, spec.Template).
					WithDetail("item", id).
					WithDetail("template", spec.Template))
			continue
		}
		item, err := rules.NewItem(id, spec.Conditions, tmpl)
		if err != nil {
			report.add(SeverityError, EntityItem, id, "", err)
			continue
		}
		if err := reg.items.Register(id, item); err != nil {
			report.add(SeverityError, EntityItem, id, "",
				errors.Wrapf(err, errors.GetErrorCode(err), "item %q not registered", id))
		}
	}

	for _, email := range cfg.UserEmails() {
		reg.users = append(reg.users, buildUser(email, cfg.Users[email], reg.items, report))
	}

	logger.Debug().
		Int("templates", reg.templates.Count()).
		Int("items", reg.items.Count()).
		Int("users", len(reg.users)).
		Int("issues", len(report.Issues())).
		Msg("Structure built")

	for _, u := range reg.users {
		ids := make([]string, 0, len(u.Items()))
		for _, item := range u.Items() {
			ids = append(ids, item.ID())
		}
		logger.Trace().Str("user", u.Email()).Strs("items", ids).Msg("User subscriptions")
	}

	return reg, report
}

func buildTemplate(id string, spec config.TemplateSpec, baseDir string) (*template.Template, error) {
	body := spec.Body
	if spec.BodyFile != "" {
		path := spec.BodyFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			code := errors.ErrFileAccess
			if os.IsNotExist(err) {
				code = errors.ErrFileNotFound
			}
			return nil, errors.Wrapf(err, code, "template %s: cannot read body file %s", id, path).
				WithDetail("template", id).
				WithDetail("path", path)
		}
		body = string(content)
	}
	return template.Parse(id, spec.Subject, body)
}

func buildUser(email string, ids []string, items *Store[*rules.Item], report *Report) *rules.User {
	var (
		resolved []*rules.Item
		seen     = make(map[string]bool, len(ids))
	)

	for _, id := range ids {
		if seen[id] {
			report.add(SeverityWarning, EntityUser, email, id,
				errors.Newf(errors.ErrDuplicateSubscription, "user %s lists item %q more than once", email, id).
					WithDetail("user", email).
					WithDetail("item", id))
		}
		seen[id] = true

		item, ok := items.Lookup(id)
		if !ok {
			report.add(SeverityWarning, EntityUser, email, id,
				errors.Newf(errors.ErrDanglingReference, "user %s references unknown item %q", email, id).
					WithDetail("user", email).
					WithDetail("item", id))
			continue
		}
		resolved = append(resolved, item)
	}

	if len(resolved) == 0 {
		report.add(SeverityWarning, EntityUser, email, "",
			errors.Newf(errors.ErrEmptySubscription, "user %s has no usable items and will never be notified", email).
				WithDetail("user", email))
	}

	return rules.NewUser(email, resolved)
}

func entityFor(section string) string {
	switch section {
	case config.SectionTemplates:
		return EntityTemplate
	case config.SectionItems:
		return EntityItem
	default:
		return EntityUser
	}
}

func asNotifyError(err error, code errors.ErrorCode) error {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return err
	}
	return errors.Wrap(err, code, "malformed entry")
}

// Template returns the template with the given id.
func (r *Registry) Template(id string) (*template.Template, bool) {
	return r.templates.Lookup(id)
}

// Item returns the item with the given id.
func (r *Registry) Item(id string) (*rules.Item, bool) {
	return r.items.Lookup(id)
}

// TemplateIDs lists the usable templates.
func (r *Registry) TemplateIDs() []string { return r.templates.List() }

// ItemIDs lists the usable items.
func (r *Registry) ItemIDs() []string { return r.items.List() }

// Users returns users in matching order.
func (r *Registry) Users() []*rules.User {
	out := make([]*rules.User, len(r.users))
	copy(out, r.users)
	return out
}
