package handlers

import (
	"net/http"
)

type StatusResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
	Posts  int    `json:"posts"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.StatusService.GetStatus(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, StatusResponse{
		Status: "ok",
		Users:  report.Users,
		Posts:  report.Posts,
	}, http.StatusOK)
}
