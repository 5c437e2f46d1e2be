package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

// NoMatchMessage is reported alongside an empty row set.
const NoMatchMessage = "No products matching selected criteria"

type Response struct {
	Total   int    `json:"total"`
	Rows    []Row  `json:"rows"`
	Message string `json:"message,omitempty"`
}

type UserTab struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ViewResponse struct {
	SelectedUserID int       `json:"selectedUserId"`
	Query          string    `json:"query"`
	CanClearQuery  bool      `json:"canClearQuery"`
	UserTabs       []UserTab `json:"userTabs"`
	Response
}

type ViewController interface {
	View() View
	Evaluate(s State) []Row
	SelectUser(id int) View
	SetQuery(text string) View
	ClearQuery() View
	ResetAll() View
	Users() []models.User
}

type CatalogHandler struct {
	view ViewController
}

func NewCatalogHandler(v ViewController) *CatalogHandler {
	return &CatalogHandler{
		view: v,
	}
}

// HandleGet evaluates the pipeline for the state given in the query string
// without changing the shared view.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	state := State{Query: r.URL.Query().Get("query")}

	if uStr := r.URL.Query().Get("user"); uStr != "" {
		if u, err := strconv.Atoi(uStr); err == nil {
			state.SelectedUserID = u
		}
	}

	api.WriteJSON(w, http.StatusOK, newResponse(h.view.Evaluate(state)))
}

func (h *CatalogHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, h.view.View())
}

func (h *CatalogHandler) HandleSelectUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	h.writeView(w, h.view.SelectUser(id))
}

func (h *CatalogHandler) HandleSetQuery(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Query *string `json:"query"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Query == nil {
		api.WriteError(w, http.StatusBadRequest, "Missing query")
		return
	}

	h.writeView(w, h.view.SetQuery(*input.Query))
}

func (h *CatalogHandler) HandleClearQuery(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, h.view.ClearQuery())
}

func (h *CatalogHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, h.view.ResetAll())
}

func (h *CatalogHandler) writeView(w http.ResponseWriter, v View) {
	users := h.view.Users()
	tabs := make([]UserTab, 0, len(users)+1)
	tabs = append(tabs, UserTab{ID: NoUser, Name: "All", Active: v.SelectedUserID == NoUser})
	for _, u := range users {
		tabs = append(tabs, UserTab{ID: u.ID, Name: u.Name, Active: v.SelectedUserID == u.ID})
	}

	api.WriteJSON(w, http.StatusOK, ViewResponse{
		SelectedUserID: v.SelectedUserID,
		Query:          v.Query,
		CanClearQuery:  v.Query != "",
		UserTabs:       tabs,
		Response:       newResponse(v.Rows),
	})
}

func newResponse(rows []Row) Response {
	if rows == nil {
		rows = []Row{}
	}
	resp := Response{
		Total: len(rows),
		Rows:  rows,
	}
	if len(rows) == 0 {
		resp.Message = NoMatchMessage
	}
	return resp
}
