package catalog

import (
	"slices"
	"sync"

	"github.com/mytheresa/product-categories/models"
	"github.com/rs/zerolog"
)

// View is the state together with the rows it selects.
type View struct {
	State
	Rows []Row
}

// Controller owns the view state over a fixed set of reference data.
// Each mutation runs to completion and recomputes the rows before the next
// one starts, so readers never observe a half-applied change.
type Controller struct {
	data     *models.ReferenceData
	resolver *Resolver
	logger   zerolog.Logger

	mu    sync.Mutex
	state State
	view  View
}

func NewController(data *models.ReferenceData, logger zerolog.Logger) *Controller {
	if data == nil {
		data = &models.ReferenceData{}
	}
	c := &Controller{
		data:     data,
		resolver: NewResolver(data),
		logger:   logger.With().Str("component", "catalog").Logger(),
	}
	c.view = c.compute(c.state)
	return c
}

// Evaluate runs the pipeline for s without touching the controller's state.
func (c *Controller) Evaluate(s State) []Row {
	return Filter(c.resolver.Enrich(c.data.Products), s)
}

// View returns a copy of the current view; callers may modify it freely.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.clone()
}

// SelectUser sets the owner filter. NoUser clears it.
func (c *Controller) SelectUser(id int) View {
	return c.mutate("select_user", func(s *State) {
		s.SelectedUserID = id
	})
}

// SetQuery stores text verbatim.
func (c *Controller) SetQuery(text string) View {
	return c.mutate("set_query", func(s *State) {
		s.Query = text
	})
}

func (c *Controller) ClearQuery() View {
	return c.mutate("clear_query", func(s *State) {
		s.Query = ""
	})
}

// ResetAll clears both the query and the owner filter in one step.
func (c *Controller) ResetAll() View {
	return c.mutate("reset_all", func(s *State) {
		*s = State{}
	})
}

func (c *Controller) Users() []models.User {
	return slices.Clone(c.data.Users)
}

func (c *Controller) Categories() []models.Category {
	return slices.Clone(c.data.Categories)
}

// OwnerOf returns the user owning category, or nil.
func (c *Controller) OwnerOf(category models.Category) *models.User {
	return c.resolver.User(category.OwnerID)
}

func (c *Controller) mutate(intent string, apply func(*State)) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	apply(&next)
	c.state = next
	c.view = c.compute(next)

	c.logger.Debug().
		Str("intent", intent).
		Int("selected_user_id", next.SelectedUserID).
		Str("query", next.Query).
		Int("rows", len(c.view.Rows)).
		Msg("view state changed")
	return c.view.clone()
}

func (v View) clone() View {
	rows := make([]Row, len(v.Rows))
	for i, row := range v.Rows {
		if row.Category != nil {
			category := *row.Category
			row.Category = &category
		}
		if row.User != nil {
			user := *row.User
			row.User = &user
		}
		rows[i] = row
	}
	return View{State: v.State, Rows: rows}
}

func (c *Controller) compute(s State) View {
	return View{State: s, Rows: c.Evaluate(s)}
}
