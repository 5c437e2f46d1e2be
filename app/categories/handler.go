package categories

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type OwnerResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type CategoryResponse struct {
	ID    int            `json:"id"`
	Title string         `json:"title"`
	Icon  string         `json:"icon"`
	Owner *OwnerResponse `json:"owner"`
}

type CategoryProvider interface {
	Categories() []models.Category
	OwnerOf(c models.Category) *models.User
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories := h.repo.Categories()

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:    c.ID,
			Title: c.Title,
			Icon:  c.Icon,
		}
		if owner := h.repo.OwnerOf(c); owner != nil {
			response[i].Owner = &OwnerResponse{
				ID:   owner.ID,
				Name: owner.Name,
				Sex:  owner.Sex,
			}
		}
	}

	api.WriteJSON(w, http.StatusOK, response)
}
