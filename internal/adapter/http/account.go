package httpadapter

import (
	"net/http"

	"mailflow/internal/core/port"
)

const accountNotFound = "Account not found"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var in port.AccountInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	acc, err := h.accounts.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	h.writeJSON(w, http.StatusCreated, envelope{Data: acc, Message: "Account created successfully"})
}

// handleLogin always answers 200 for a well-formed request; the outcome is
// carried in the status field of the body.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	res, err := h.accounts.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	list, err := h.accounts.List(r.Context())
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: list})
}

func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	acc, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: acc})
}

func (h *Handler) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	var in port.AccountInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	acc, err := h.accounts.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: acc, Message: "Account updated successfully"})
}

func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	if err = h.accounts.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, accountNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
