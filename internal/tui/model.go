// Package tui is the terminal front end: a Bubble Tea program that renders
// the hero list, the add/edit form, the delete confirmation and a loading
// indicator over the pages orchestrators.
package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/herodex/internal/heroes"
	"github.com/mesh-intelligence/herodex/internal/pages"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// deleteDoneMsg and updateDoneMsg deliver deferred results to the program.
// They arrive after the operation's hooks ran, so the store already reflects
// the outcome.
type deleteDoneMsg struct {
	id  int
	err error
}

type updateDoneMsg struct {
	hero types.Hero
	err  error
}

// Option configures the model.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	pageSize int
}

// WithLogger sets the logger handed to the pages.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPageSize sets the number of rows per list page.
func WithPageSize(n int) Option {
	return func(c *config) { c.pageSize = n }
}

type model struct {
	store  *heroes.Store
	router *router
	opts   []pages.Option

	screen  screen
	list    *pages.ListPage
	add     *pages.AddPage
	edit    *pages.EditPage
	confirm *pages.Confirmation
	form    formView

	search    textinput.Model
	searching bool
	cursor    int

	status string
	width  int
	height int
}

// New returns the root model for store.
func New(store *heroes.Store, opts ...Option) tea.Model {
	return newModel(store, opts...)
}

func newModel(store *heroes.Store, opts ...Option) model {
	cfg := config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		pageSize: types.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &router{}
	pageOpts := []pages.Option{pages.WithLogger(cfg.logger), pages.WithPageSize(cfg.pageSize)}

	search := textinput.New()
	search.Prompt = "Buscar: "
	search.Placeholder = "nombre del héroe"
	search.Cursor.SetMode(cursor.CursorStatic)

	return model{
		store:  store,
		router: r,
		opts:   pageOpts,
		screen: screenList,
		list:   pages.NewListPage(store, r, pageOpts...),
		search: search,
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(store *heroes.Store, opts ...Option) error {
	p := tea.NewProgram(New(store, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case deleteDoneMsg:
		if msg.err != nil {
			m.status = "Error al eliminar el héroe"
		} else {
			m.status = "Héroe eliminado"
		}
		m.clampCursor()
	case updateDoneMsg:
		if msg.err != nil {
			m.status = "Error al actualizar el héroe"
		} else {
			m.status = "Héroe actualizado: " + msg.hero.Name
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// The loading overlay blocks input until pending operations settle.
		if m.store.Loading().Busy() {
			return m, nil
		}
		switch {
		case m.confirm != nil:
			cmd = m.updateConfirm(msg)
		case m.screen == screenList:
			var quit bool
			cmd, quit = m.updateList(msg)
			if quit {
				return m, tea.Quit
			}
		default:
			cmd = m.updateForm(msg)
		}
	}

	m.followRoutes()
	return m, cmd
}

// followRoutes applies navigation requested by the pages.
func (m *model) followRoutes() {
	for routes := m.router.take(); len(routes) > 0; routes = m.router.take() {
		for _, rt := range routes {
			switch rt.screen {
			case screenList:
				m.screen = screenList
				m.clampCursor()
			case screenAdd:
				m.add = pages.NewAddPage(m.store, m.router, m.opts...)
				m.form = newFormView(m.add.Form())
				m.screen = screenAdd
			case screenEdit:
				m.edit = pages.NewEditPage(m.store, m.router, m.opts...)
				if m.edit.Load(rt.id) {
					m.form = newFormView(m.edit.Form())
					m.screen = screenEdit
				}
			}
		}
	}
}

func (m *model) updateList(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return nil, false
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.list.SetTerm(m.search.Value())
		m.cursor = 0
		return cmd, false
	}

	m.status = ""
	items := m.list.Page().Items
	switch msg.String() {
	case "q":
		return nil, true
	case "/":
		m.searching = true
		return m.search.Focus(), false
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "right", "n":
		m.list.NextPage()
		m.cursor = 0
	case "left", "p":
		m.list.PrevPage()
		m.cursor = 0
	case "a":
		m.list.Add()
	case "enter", "e":
		if h, ok := m.selected(); ok {
			m.list.Edit(h)
		}
	case "d", "delete":
		if h, ok := m.selected(); ok {
			m.confirm = m.list.RequestDelete(h)
		}
	}
	return nil, false
}

func (m *model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	var yes bool
	switch msg.String() {
	case "y", "s", "enter":
		yes = true
	case "n", "esc":
	default:
		return nil
	}

	c := m.confirm
	m.confirm = nil
	d := m.list.Confirm(c, yes)
	if d == nil {
		return nil
	}
	return awaitDelete(c.Hero.ID, d)
}

func (m *model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.form.state.Cancel()
		return nil
	case "tab", "down":
		m.form.move(1)
		return nil
	case "shift+tab", "up":
		m.form.move(-1)
		return nil
	case "enter":
		m.form.touched = true
		if _, ok := m.form.state.Submit(); !ok {
			return nil
		}
		if m.screen == screenEdit {
			if d := m.edit.Pending(); d != nil {
				return awaitUpdate(d)
			}
		}
		return nil
	}
	return m.form.update(msg)
}

func (m *model) selected() (types.Hero, bool) {
	items := m.list.Page().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return types.Hero{}, false
	}
	return items[m.cursor], true
}

func (m *model) clampCursor() {
	n := len(m.list.Page().Items)
	m.cursor = min(m.cursor, n-1)
	m.cursor = max(m.cursor, 0)
}

func awaitDelete(id int, d *heroes.Deferred[bool]) tea.Cmd {
	return func() tea.Msg {
		_, err := d.Wait(context.Background())
		return deleteDoneMsg{id: id, err: err}
	}
}

func awaitUpdate(d *heroes.Deferred[types.Hero]) tea.Cmd {
	return func() tea.Msg {
		h, err := d.Wait(context.Background())
		return updateDoneMsg{hero: h, err: err}
	}
}
