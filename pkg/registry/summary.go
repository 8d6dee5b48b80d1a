package registry

// UserSummary lists a user's usable items in matching order.
type UserSummary struct {
	Email string   `json:"email" yaml:"email"`
	Items []string `json:"items" yaml:"items"`
}

// Summary is a dump of a built registry and the issues found building it.
type Summary struct {
	Templates []string      `json:"templates" yaml:"templates"`
	Items     []string      `json:"items" yaml:"items"`
	Users     []UserSummary `json:"users" yaml:"users"`
	Issues    []Issue       `json:"issues" yaml:"issues"`
	Errors    int           `json:"errors" yaml:"errors"`
	Warnings  int           `json:"warnings" yaml:"warnings"`
}

// Summarize describes reg and report for display.
func Summarize(reg *Registry, report *Report) *Summary {
	s := &Summary{
		Templates: reg.TemplateIDs(),
		Items:     reg.ItemIDs(),
		Issues:    report.Issues(),
	}
	for _, u := range reg.Users() {
		us := UserSummary{Email: u.Email(), Items: []string{}}
		for _, item := range u.Items() {
			us.Items = append(us.Items, item.ID())
		}
		s.Users = append(s.Users, us)
	}
	for _, i := range s.Issues {
		if i.Severity == SeverityError {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	return s
}
