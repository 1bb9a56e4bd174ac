package handlers

import (
	"fmt"
	"net/http"

	"blogly/internal/models"
	"blogly/internal/repository"
)

type postFormPage struct {
	Error   string
	User    *models.User
	Title   string
	Content string
}

type postEditPage struct {
	Error string
	Post  *models.Post
}

type postShowPage struct {
	Flash  string
	Post   *models.Post
	Author *models.User
}

func (h *Handlers) NewPostForm(w http.ResponseWriter, r *http.Request) {
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

	renderPage(w, http.StatusOK, "post_new.html", postFormPage{User: user})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	req := repository.CreatePostRequest{
		UserID:  userID,
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		renderPage(w, http.StatusBadRequest, "post_new.html", postFormPage{
			Error:   "Title and content are required.",
			User:    user,
			Title:   req.Title,
			Content: req.Content,
		})
		return
	}

	res, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		if repository.IsValidation(err) {
			renderPage(w, http.StatusBadRequest, "post_new.html", postFormPage{
				Error:   err.Error(),
				User:    user,
				Title:   req.Title,
				Content: req.Content,
			})
			return
		}
		renderServerError(w, err)
		return
	}

	redirectWithFlash(w, r, fmt.Sprintf("/users/%d", userID), res.Flash)
}

func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	author, err := h.UserService.GetUser(r.Context(), post.UserID)
	if err != nil {
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "post_show.html", postShowPage{
		Flash:  flashFrom(r),
		Post:   post,
		Author: author,
	})
}

func (h *Handlers) EditPostForm(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "post_edit.html", postEditPage{Post: post})
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	req := repository.UpdatePostRequest{
		PostID:  postID,
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		renderPage(w, http.StatusBadRequest, "post_edit.html", postEditPage{
			Error: "Title and content are required.",
			Post: &models.Post{
				ID:      postID,
				Title:   req.Title,
				Content: req.Content,
			},
		})
		return
	}

	res, err := h.PostService.UpdatePost(r.Context(), req)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	// возвращаемся на страницу автора
	redirectWithFlash(w, r, fmt.Sprintf("/users/%d", res.UserID), res.Flash)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		renderNotFound(w)
		return
	}

	res, err := h.PostService.DeletePost(r.Context(), postID)
	if err != nil {
		if repository.IsNotFound(err) {
			renderNotFound(w)
			return
		}
		renderServerError(w, err)
		return
	}

	redirectWithFlash(w, r, fmt.Sprintf("/users/%d", res.UserID), res.Flash)
}
