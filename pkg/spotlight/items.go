// Package spotlight powers the quick-jump palette: permission-filtered quick
// links over the navigation tree, ranked by fuzzy match against their
// localized labels.
package spotlight

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"

	"github.com/a-h/templ"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/intl"
	"github.com/fmstack/fmstack/pkg/types"
)

// Item represents a renderable spotlight entry.
type Item interface {
	templ.Component
}

// NewItem creates a simple Item with a static label and link.
func NewItem(icon templ.Component, label, link string) Item {
	return &item{label: label, icon: icon, link: link}
}

type item struct {
	label string
	icon  templ.Component
	link  string
}

func (i *item) Render(ctx context.Context, w io.Writer) error {
	return linkItem(i.label, i.link, i.icon).Render(ctx, w)
}

func linkItem(label, link string, icon templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<a class="spotlight__item" href="%s">`, html.EscapeString(link)); err != nil {
			return err
		}
		if icon != nil {
			if err := icon.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<span>%s</span></a>`, html.EscapeString(label)); err != nil {
			return err
		}
		return nil
	})
}

func NewQuickLink(icon templ.Component, trKey, link string) *QuickLink {
	return &QuickLink{trKey: trKey, icon: icon, link: link}
}

type QuickLink struct {
	trKey       string
	icon        templ.Component
	link        string
	permissions []*permission.Permission
}

func (i *QuickLink) Render(ctx context.Context, w io.Writer) error {
	label := intl.MustT(ctx, i.trKey)
	return linkItem(label, i.link, i.icon).Render(ctx, w)
}

// RequirePermissions hides the quick link from users lacking any of perms.
func (i *QuickLink) RequirePermissions(perms ...*permission.Permission) *QuickLink {
	i.permissions = append(i.permissions, perms...)
	return i
}

type QuickLinks struct {
	items []*QuickLink
}

// FromNavItems registers a quick link for every leaf of the navigation tree,
// inheriting each node's permission requirements.
func (ql *QuickLinks) FromNavItems(items []types.NavigationItem) {
	for _, it := range items {
		if len(it.Children) > 0 {
			ql.FromNavItems(it.Children)
			continue
		}
		if it.Href == "" {
			continue
		}
		ql.Add(NewQuickLink(it.Icon, it.Name, it.Href).RequirePermissions(it.Permissions...))
	}
}

// Find returns the authorized quick links ranked by fuzzy closeness to q.
func (ql *QuickLinks) Find(ctx context.Context, q string) []Item {
	links := ql.authorizedLinks(ctx)
	if len(links) == 0 {
		return nil
	}
	words := make([]string, len(links))
	for i, it := range links {
		words[i] = intl.MustT(ctx, it.trKey)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	result := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, links[rank.OriginalIndex])
	}
	return result
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

func (ql *QuickLinks) authorizedLinks(ctx context.Context) []*QuickLink {
	u, err := composables.UseUser(ctx)
	if err != nil || u == nil {
		return nil
	}

	filtered := make([]*QuickLink, 0, len(ql.items))
	for _, link := range ql.items {
		if link.allowed(u) {
			filtered = append(filtered, link)
		}
	}
	return filtered
}

func (i *QuickLink) allowed(u user.User) bool {
	if len(i.permissions) == 0 {
		return true
	}
	for _, perm := range i.permissions {
		if !u.Can(perm) {
			return false
		}
	}
	return true
}
