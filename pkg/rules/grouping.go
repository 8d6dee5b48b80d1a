package rules

import (
	"context"
	"encoding/json"

	"github.com/arthur-debert/emailnotify/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// Group is one matched item and the users who selected it.
type Group struct {
	Item       *Item
	Recipients []string
}

// Grouping maps item ids to recipients. Groups keep the order in which
// their item was first selected; recipients keep user order.
type Grouping struct {
	groups []*Group
	index  map[string]int
}

func newGrouping() *Grouping {
	return &Grouping{index: make(map[string]int)}
}

func (g *Grouping) add(item *Item, email string) {
	if n, ok := g.index[item.ID()]; ok {
		g.groups[n].Recipients = append(g.groups[n].Recipients, email)
		return
	}
	g.index[item.ID()] = len(g.groups)
	g.groups = append(g.groups, &Group{Item: item, Recipients: []string{email}})
}

// Groups returns the groups in order.
func (g *Grouping) Groups() []*Group { return g.groups }

// Len is the number of distinct items matched.
func (g *Grouping) Len() int { return len(g.groups) }

// Empty reports whether nobody matched. An empty grouping means there is
// nothing to send, not that something went wrong.
func (g *Grouping) Empty() bool { return len(g.groups) == 0 }

// Lookup returns the recipients for the item with the given id.
func (g *Grouping) Lookup(itemID string) ([]string, bool) {
	n, ok := g.index[itemID]
	if !ok {
		return nil, false
	}
	return g.groups[n].Recipients, true
}

// GroupRecipients selects each user's first matching item and groups the
// users by item id. Users without a match are left out.
func GroupRecipients(users []*User, args []string) *Grouping {
	selected := make([]*Item, len(users))
	for n, u := range users {
		selected[n] = u.SelectFirstMatch(args)
	}
	return merge(users, selected)
}

// GroupRecipientsParallel is GroupRecipients with matching spread over at
// most workers goroutines. The result is identical to the sequential one.
func GroupRecipientsParallel(ctx context.Context, users []*User, args []string, workers int) (*Grouping, error) {
	if workers <= 1 {
		return GroupRecipients(users, args), nil
	}

	selected := make([]*Item, len(users))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for n, u := range users {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			selected[n] = u.SelectFirstMatch(args)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return merge(users, selected), nil
}

func merge(users []*User, selected []*Item) *Grouping {
	logger := logging.GetLogger("rules")
	g := newGrouping()

	for n, u := range users {
		item := selected[n]
		if item == nil {
			logger.Debug().Str("user", u.Email()).Msg("No item matched")
			continue
		}
		logger.Debug().
			Str("user", u.Email()).
			Str("item", item.ID()).
			Msg("Item matched")
		g.add(item, u.Email())
	}

	logger.Debug().
		Int("users", len(users)).
		Int("groups", g.Len()).
		Msg("Grouping complete")

	return g
}

type groupView struct {
	Item       string   `json:"item" yaml:"item"`
	Template   string   `json:"template" yaml:"template"`
	Recipients []string `json:"recipients" yaml:"recipients"`
}

func (g *Grouping) view() []groupView {
	out := make([]groupView, 0, len(g.groups))
	for _, grp := range g.groups {
		out = append(out, groupView{
			Item:       grp.Item.ID(),
			Template:   grp.Item.Template().ID(),
			Recipients: grp.Recipients,
		})
	}
	return out
}

// MarshalJSON encodes the groups as a list of item, template and recipients.
func (g *Grouping) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.view())
}

// MarshalYAML is the YAML counterpart of MarshalJSON.
func (g *Grouping) MarshalYAML() (interface{}, error) {
	return g.view(), nil
}
