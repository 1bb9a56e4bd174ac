package handlers

import (
	"net/http"

	"blogly/internal/models"
)

type homePage struct {
	Flash string
	Posts []models.Post
}

// Home показывает главную страницу с последними постами
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListRecentPosts(r.Context())
	if err != nil {
		renderServerError(w, err)
		return
	}

	renderPage(w, http.StatusOK, "homepage.html", homePage{
		Flash: flashFrom(r),
		Posts: posts,
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(w)
}
