package pages

import (
	"log/slog"

	"github.com/mesh-intelligence/herodex/internal/form"
	"github.com/mesh-intelligence/herodex/internal/heroes"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// AddPage creates heroes from its form.
type AddPage struct {
	store  *heroes.Store
	nav    Navigator
	form   *form.State
	logger *slog.Logger
}

// NewAddPage creates an add page with an empty form. Submitting the form
// saves; cancelling returns to the list.
func NewAddPage(store *heroes.Store, nav Navigator, opts ...Option) *AddPage {
	o := applyOptions(opts)
	p := &AddPage{store: store, nav: nav, form: form.New(), logger: o.logger}
	p.form.OnSubmit(func(sub form.Submission) { p.Save(sub.Draft) })
	p.form.OnCancel(p.nav.ToList)
	return p
}

// Form returns the page's form.
func (p *AddPage) Form() *form.State { return p.form }

// Save creates the hero and returns to the list.
func (p *AddPage) Save(d types.Draft) (types.Hero, error) {
	h, err := p.store.Create(d)
	if err != nil {
		p.logger.Error("error creating hero", "err", err)
		return types.Hero{}, err
	}
	p.nav.ToList()
	return h, nil
}

// Cancel returns to the list.
func (p *AddPage) Cancel() { p.nav.ToList() }

// EditPage edits an existing hero.
type EditPage struct {
	store  *heroes.Store
	nav    Navigator
	form   *form.State
	logger *slog.Logger

	pending *heroes.Deferred[types.Hero]
}

// NewEditPage creates an edit page. Call Load before using the form.
func NewEditPage(store *heroes.Store, nav Navigator, opts ...Option) *EditPage {
	o := applyOptions(opts)
	p := &EditPage{store: store, nav: nav, form: form.New(), logger: o.logger}
	p.form.OnSubmit(func(sub form.Submission) { p.pending = p.Save(sub) })
	p.form.OnCancel(p.nav.ToList)
	return p
}

// Form returns the page's form.
func (p *EditPage) Form() *form.State { return p.form }

// Pending returns the update started by the last form submission, if any.
func (p *EditPage) Pending() *heroes.Deferred[types.Hero] { return p.pending }

// Load binds the hero with the given ID to the form. When no such hero
// exists it returns to the list and reports false.
func (p *EditPage) Load(id int) bool {
	h, ok := p.store.GetByID(id)
	if !ok {
		p.logger.Debug("hero to edit not found", "id", id)
		p.nav.ToList()
		return false
	}
	p.form.Bind(&h)
	return true
}

// Save sends the edited hero to the remote authority, applies the result and
// returns to the list. A submission without an ID is an invariant violation:
// it is logged and nothing else happens, and Save returns nil.
func (p *EditPage) Save(sub form.Submission) *heroes.Deferred[types.Hero] {
	if !sub.HasID {
		p.logger.Error("attempted to save a hero without an id in edit mode", "err", types.ErrMissingID)
		return nil
	}

	return p.store.UpdateAsync(sub.Hero()).
		Handle(func(h types.Hero, err error) {
			if err != nil {
				p.logger.Error("error updating hero", "id", sub.ID, "err", err)
				return
			}
			if err := p.store.Update(h); err != nil {
				p.logger.Error("error updating hero", "id", sub.ID, "err", err)
				return
			}
			p.nav.ToList()
		}).
		Finally(p.store.Loading().Exit)
}

// Cancel returns to the list.
func (p *EditPage) Cancel() { p.nav.ToList() }
