package rules

// User is a recipient and their subscriptions in priority order.
type User struct {
	email string
	items []*Item
}

// NewUser keeps items in the given order; duplicates are allowed.
func NewUser(email string, items []*Item) *User {
	own := make([]*Item, len(items))
	copy(own, items)
	return &User{email: email, items: own}
}

func (u *User) Email() string { return u.email }

// Items returns a copy of the user's subscriptions.
func (u *User) Items() []*Item {
	out := make([]*Item, len(u.items))
	copy(out, u.items)
	return out
}

// SelectFirstMatch returns the earliest configured item matching args,
// or nil when none does.
func (u *User) SelectFirstMatch(args []string) *Item {
	for _, item := range u.items {
		if item.Matches(args) {
			return item
		}
	}
	return nil
}
