package text

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/dispatcher"
	"github.com/arthur-debert/emailnotify/pkg/registry"
	"github.com/arthur-debert/emailnotify/pkg/rules"
	"github.com/arthur-debert/emailnotify/pkg/style"
)

// Compose lays result out as markup text. Status badges are colored only
// when styled is set; everything else is left to the markup renderer.
func Compose(result interface{}, styled bool) string {
	var b strings.Builder

	switch v := result.(type) {
	case *registry.Summary:
		composeSummary(&b, v)
	case *dispatcher.Plan:
		composePlan(&b, v)
	case *dispatcher.Result:
		composeResult(&b, v, styled)
	case *rules.Grouping:
		composeGrouping(&b, v)
	case *dispatcher.Preview:
		composePreview(&b, v)
	default:
		fmt.Fprint(&b, v)
	}

	return strings.TrimRight(b.String(), "\n")
}

func composeSummary(b *strings.Builder, s *registry.Summary) {
	b.WriteString("[title]Configuration[/title]\n")
	fmt.Fprintf(b, "templates: %d   items: %d   users: %d\n\n", len(s.Templates), len(s.Items), len(s.Users))

	if len(s.Users) > 0 {
		b.WriteString("[subtitle]Users[/subtitle]\n")
		for _, u := range s.Users {
			items := make([]string, 0, len(u.Items))
			for _, id := range u.Items {
				items = append(items, "[item]"+id+"[/item]")
			}
			if len(items) == 0 {
				items = append(items, "[muted](none)[/muted]")
			}
			fmt.Fprintf(b, "  [recipient]%s[/recipient]: %s\n", u.Email, strings.Join(items, ", "))
		}
		b.WriteString("\n")
	}

	if len(s.Issues) == 0 {
		b.WriteString("[success]No problems found[/success]\n")
		return
	}

	b.WriteString("[subtitle]Issues[/subtitle]\n")
	for _, i := range s.Issues {
		tag := "warning"
		if i.Severity == registry.SeverityError {
			tag = "error"
		}
		fmt.Fprintf(b, "  [%s]%-7s[/%s] %s %s: %s\n", tag, i.Severity, tag, i.Entity, i.ID, i.Message)
	}
	fmt.Fprintf(b, "\n%d error(s), %d warning(s)\n", s.Errors, s.Warnings)
}

func composePlan(b *strings.Builder, p *dispatcher.Plan) {
	fmt.Fprintf(b, "[title]Run %s[/title]\n", p.RunID)
	fmt.Fprintf(b, "arguments: %s\n\n", formatArgs(p.Args))

	if p.Empty() {
		b.WriteString("[muted]No user matched, nothing to send[/muted]\n")
		return
	}

	for _, m := range p.Messages {
		fmt.Fprintf(b, "[item]%s[/item] ([template]%s[/template]) -> %s\n", m.ItemID, m.TemplateID, recipients(m.To))
		fmt.Fprintf(b, "  subject: %s\n", m.Subject)
	}
}

func composeResult(b *strings.Builder, r *dispatcher.Result, styled bool) {
	if len(r.Outcomes) == 0 {
		b.WriteString("[muted]No user matched, nothing to send[/muted]\n")
		return
	}

	for _, o := range r.Outcomes {
		fmt.Fprintf(b, "%s [item]%s[/item] -> %s\n", style.Badge(style.Status(o.Status), styled), o.ItemID, recipients(o.Recipients))
		if o.Error != "" {
			fmt.Fprintf(b, "  [error]%s[/error]\n", o.Error)
		}
	}

	if r.DryRun {
		b.WriteString("\n[info]Dry run, nothing was sent[/info]\n")
		return
	}
	fmt.Fprintf(b, "\nsent %d, failed %d via %s\n", r.Sent, r.Failed, r.Sender)
}

func composeGrouping(b *strings.Builder, g *rules.Grouping) {
	if g.Empty() {
		b.WriteString("[muted]No user matched[/muted]\n")
		return
	}
	for _, grp := range g.Groups() {
		fmt.Fprintf(b, "[item]%s[/item] -> %s\n", grp.Item.ID(), recipients(grp.Recipients))
	}
}

func composePreview(b *strings.Builder, p *dispatcher.Preview) {
	fmt.Fprintf(b, "[title]Template %s[/title]\n", p.TemplateID)
	fmt.Fprintf(b, "arguments: %s (template uses %d)\n\n", formatArgs(p.Args), p.Required)
	fmt.Fprintf(b, "[subtitle]Subject[/subtitle]\n%s\n\n", p.Subject)
	fmt.Fprintf(b, "[subtitle]HTML[/subtitle]\n%s\n", p.HTML)
	if p.Text != "" {
		fmt.Fprintf(b, "\n[subtitle]Text[/subtitle]\n%s\n", p.Text)
	}
}

func recipients(to []string) string {
	out := make([]string, 0, len(to))
	for _, r := range to {
		out = append(out, "[recipient]"+r+"[/recipient]")
	}
	return strings.Join(out, ", ")
}

func formatArgs(args []string) string {
	if len(args) == 0 {
		return "(none)"
	}
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, fmt.Sprintf("%q", a))
	}
	return strings.Join(quoted, " ")
}
