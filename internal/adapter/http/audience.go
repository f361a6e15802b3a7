package httpadapter

import (
	"net/http"
	"time"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

const audienceNotFound = "Audience not found"

type audienceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toAudienceResponse(a domain.Audience) audienceResponse {
	return audienceResponse{
		ID:        a.ID,
		Name:      a.Name,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func (h *Handler) handleCreateAudience(w http.ResponseWriter, r *http.Request) {
	var in port.AudienceInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	a, err := h.audiences.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	h.writeJSON(w, http.StatusCreated, envelope{Data: toAudienceResponse(*a), Message: "Audience created successfully"})
}

func (h *Handler) handleListAudiences(w http.ResponseWriter, r *http.Request) {
	list, err := h.audiences.List(r.Context())
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	out := make([]audienceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAudienceResponse(a))
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: out})
}

func (h *Handler) handleGetAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	a, err := h.audiences.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: toAudienceResponse(*a)})
}

func (h *Handler) handleUpdateAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	var in port.AudienceInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	a, err := h.audiences.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: toAudienceResponse(*a), Message: "Audience updated successfully"})
}

func (h *Handler) handleDeleteAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	if err = h.audiences.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, audienceNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
