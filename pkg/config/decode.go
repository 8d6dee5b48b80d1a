package config

import (
	"fmt"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
)

// Entries may use the table form
//
//	[templates.t1]
//	subject = "Hi {0}"
//	body = "Value: {0}"
//
// or the positional form of the original JSON files:
//
//	"templates": {"t1": ["Hi {0}", "Value: {0}"]}
//	"items":     {"x":  [["^A", ""], "t1"]}
//
// A badly shaped entry is recorded as Malformed and skipped. A section that
// is not a table at all is a configuration error.

func decodeTemplates(raw interface{}, malformed *[]Malformed) (map[string]TemplateSpec, error) {
	entries, err := sectionMap(SectionTemplates, raw)
	if err != nil {
		return nil, err
	}

	out := make(map[string]TemplateSpec, len(entries))
	for id, v := range entries {
		var spec TemplateSpec
		switch val := v.(type) {
		case []interface{}:
			if len(val) != 2 {
				*malformed = append(*malformed, shapeError(SectionTemplates, id, "expected [subject, body]"))
				continue
			}
			subject, ok1 := val[0].(string)
			body, ok2 := val[1].(string)
			if !ok1 || !ok2 {
				*malformed = append(*malformed, shapeError(SectionTemplates, id, "subject and body must be strings"))
				continue
			}
			spec = TemplateSpec{Subject: subject, Body: body}
		case map[string]interface{}:
			if err := decodeEntry(val, &spec); err != nil {
				*malformed = append(*malformed, Malformed{Section: SectionTemplates, ID: id, Err: err})
				continue
			}
		default:
			*malformed = append(*malformed, shapeError(SectionTemplates, id, fmt.Sprintf("unexpected %T", v)))
			continue
		}
		out[id] = spec
	}
	return out, nil
}

func decodeItems(raw interface{}, malformed *[]Malformed) (map[string]ItemSpec, error) {
	entries, err := sectionMap(SectionItems, raw)
	if err != nil {
		return nil, err
	}

	out := make(map[string]ItemSpec, len(entries))
	for id, v := range entries {
		var spec ItemSpec
		switch val := v.(type) {
		case []interface{}:
			if len(val) != 2 {
				*malformed = append(*malformed, shapeError(SectionItems, id, "expected [conditions, template]"))
				continue
			}
			if err := decodeEntry(map[string]interface{}{
				"conditions": val[0],
				"template":   val[1],
			}, &spec); err != nil {
				*malformed = append(*malformed, Malformed{Section: SectionItems, ID: id, Err: err})
				continue
			}
		case map[string]interface{}:
			if err := decodeEntry(val, &spec); err != nil {
				*malformed = append(*malformed, Malformed{Section: SectionItems, ID: id, Err: err})
				continue
			}
		default:
			*malformed = append(*malformed, shapeError(SectionItems, id, fmt.Sprintf("unexpected %T", v)))
			continue
		}
		out[id] = spec
	}
	return out, nil
}

func decodeUsers(raw interface{}, malformed *[]Malformed) (map[string][]string, error) {
	entries, err := sectionMap(SectionUsers, raw)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(entries))
	for email, v := range entries {
		var items []string
		if err := mapstructure.WeakDecode(v, &items); err != nil {
			*malformed = append(*malformed, Malformed{Section: SectionUsers, ID: email, Err: err})
			continue
		}
		out[email] = items
	}
	return out, nil
}

func sectionMap(section string, raw interface{}) (map[string]interface{}, error) {
	if raw == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "section %q must be a table, got %T", section, raw).
			WithDetail("section", section)
	}
	return m, nil
}

func decodeEntry(in map[string]interface{}, out interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "koanf",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return d.Decode(in)
}

func shapeError(section, id, reason string) Malformed {
	return Malformed{
		Section: section,
		ID:      id,
		Err: errors.Newf(errors.ErrConfigParse, "%s entry %q: %s", section, id, reason).
			WithDetail("section", section).
			WithDetail("id", id),
	}
}
