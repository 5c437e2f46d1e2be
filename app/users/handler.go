package users

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type UserResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type UserProvider interface {
	Users() []models.User
}

type UserHandler struct {
	repo UserProvider
}

func NewUserHandler(r UserProvider) *UserHandler {
	return &UserHandler{repo: r}
}

func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	users := h.repo.Users()

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
			Sex:  u.Sex,
		}
	}

	api.WriteJSON(w, http.StatusOK, response)
}
