package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogly/internal/models"
	"blogly/internal/repository"
)

type usersListPage struct {
	Flash string
	Users []models.User
}

type userFormPage struct {
	Error     string
	FirstName string
	LastName  string
	ImageURL  string
}

type userEditPage struct {
	Error string
	User  *models.User
}

type userDetailsPage struct {
	Flash string
	User  *models.User
	Posts []models.Post
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, fmt.Errorf("неверный ID в URL: %w", err)
	}
	return id, nil
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "users_index.html", usersListPage{
		Flash: flashFrom(r),
		Users: users,
	})
}

func (h *Handlers) NewUserForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "user_new.html", userFormPage{})
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	req := repository.CreateUserRequest{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		ImageURL:  r.FormValue("image_url"),
	}

	if err := h.Validate.Struct(req); err != nil {
		renderPage(w, http.StatusBadRequest, "user_new.html", userFormPage{
			Error:     "First name and last name are required.",
			FirstName: req.FirstName,
			LastName:  req.LastName,
			ImageURL:  req.ImageURL,
		})
		return
	}

	res, err := h.UserService.CreateUser(r.Context(), req)
	if err != nil {
		if repository.IsValidation(err) {
			renderPage(w, http.StatusBadRequest, "user_new.html", userFormPage{
				Error:     err.Error(),
				FirstName: req.FirstName,
				LastName:  req.LastName,
				ImageURL:  req.ImageURL,
			})
			return
		}
		renderServerError(w, err)
		return
	}

	redirectWithFlash(w, r, "/users", res.Flash)
}

func (h *Handlers) ShowUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	user, posts, err := h.UserService.GetUserWithPosts(r.Context(), userID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "user_show.html", userDetailsPage{
		Flash: flashFrom(r),
		User:  user,
		Posts: posts,
	})
}

func (h *Handlers) EditUserForm(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "user_edit.html", userEditPage{User: user})
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	req := repository.UpdateUserRequest{
		UserID:    userID,
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		ImageURL:  r.FormValue("image_url"),
	}

	if err := h.Validate.Struct(req); err != nil {
		imageURL := req.ImageURL
		renderPage(w, http.StatusBadRequest, "user_edit.html", userEditPage{
			Error: "First name and last name are required.",
			User: &models.User{
				ID:        userID,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				ImageURL:  &imageURL,
			},
		})
		return
	}

	_, err = h.UserService.UpdateUser(r.Context(), req)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	// удаление пользователя каскадно удаляет его посты
	err = h.UserService.DeleteUser(r.Context(), userID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusFound)
}
