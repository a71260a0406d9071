package pages

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mesh-intelligence/herodex/internal/heroes"
	"github.com/mesh-intelligence/herodex/internal/search"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Confirmation is a pending "delete this hero?" question. It can be answered
// once.
type Confirmation struct {
	Hero types.Hero

	mu       sync.Mutex
	answered bool
}

// Title is the dialog heading.
func (c *Confirmation) Title() string { return "Eliminar Héroe" }

// Message asks the user to confirm the deletion.
func (c *Confirmation) Message() string {
	return fmt.Sprintf("¿Está seguro de que desea eliminar a %s?", c.Hero.Name)
}

// Answered reports whether Confirm has already consumed this confirmation.
func (c *Confirmation) Answered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answered
}

func (c *Confirmation) answer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.answered {
		return false
	}
	c.answered = true
	return true
}

// ListPage is the hero list screen. Its search ignores whitespace inside
// names, so "spider man" finds "SPIDERMAN".
type ListPage struct {
	store  *heroes.Store
	nav    Navigator
	proj   *search.Projection
	logger *slog.Logger

	mu       sync.Mutex
	pageSize int
	page     int
}

// NewListPage creates a list page over store.
func NewListPage(store *heroes.Store, nav Navigator, opts ...Option) *ListPage {
	o := applyOptions(opts)
	return &ListPage{
		store:    store,
		nav:      nav,
		proj:     search.NewProjection(store.GetAll, search.ModeCompact),
		logger:   o.logger,
		pageSize: o.pageSize,
	}
}

// SetTerm changes the search term and returns to the first page.
func (p *ListPage) SetTerm(term string) {
	p.proj.SetTerm(term)
	p.mu.Lock()
	p.page = 0
	p.mu.Unlock()
}

// Term returns the search term as entered.
func (p *ListPage) Term() string { return p.proj.Term() }

// Visible returns every hero matching the current term.
func (p *ListPage) Visible() []types.Hero { return p.proj.Results() }

// Page returns the current page of visible heroes.
func (p *ListPage) Page() search.Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	pg := search.Paginate(p.proj.Results(), p.pageSize, p.page)
	p.page = pg.Index
	return pg
}

// NextPage advances one page, stopping at the last.
func (p *ListPage) NextPage() { p.movePage(1) }

// PrevPage goes back one page, stopping at the first.
func (p *ListPage) PrevPage() { p.movePage(-1) }

func (p *ListPage) movePage(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = search.Paginate(p.proj.Results(), p.pageSize, p.page+delta).Index
}

// PageSize returns the number of heroes per page.
func (p *ListPage) PageSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageSize
}

// Add opens the add screen.
func (p *ListPage) Add() { p.nav.ToAdd() }

// Edit opens the edit screen for h.
func (p *ListPage) Edit(h types.Hero) { p.nav.ToEdit(h.ID) }

// RequestDelete asks for confirmation before deleting h.
func (p *ListPage) RequestDelete(h types.Hero) *Confirmation {
	return &Confirmation{Hero: h}
}

// Confirm answers c. On yes it starts the remote delete and removes the hero
// once that succeeds; the loading reference is released however the
// operation ends. It returns nil when the answer is no or c was already
// answered.
func (p *ListPage) Confirm(c *Confirmation, yes bool) *heroes.Deferred[bool] {
	if !c.answer() || !yes {
		return nil
	}

	id := c.Hero.ID
	return p.store.DeleteAsync().
		Handle(func(ok bool, err error) {
			if err != nil {
				p.logger.Error("error deleting hero", "id", id, "err", err)
				return
			}
			if !ok {
				return
			}
			if err := p.store.Delete(id); err != nil {
				p.logger.Error("error deleting hero", "id", id, "err", err)
			}
		}).
		Finally(p.store.Loading().Exit)
}
