package httpadapter

import "net/http"

const automationNotFound = "Automation not found"

// handleCreateAutomation accepts {name, schedule, campaign, audienceIds,
// status}. schedule is an RFC 3339 timestamp or null.
func (h *Handler) handleCreateAutomation(w http.ResponseWriter, r *http.Request) {
	in, err := decodeAutomation(w, r)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	view, err := h.automations.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	h.writeJSON(w, http.StatusCreated, envelope{Data: view, Message: "Automation created successfully"})
}

func (h *Handler) handleListAutomations(w http.ResponseWriter, r *http.Request) {
	list, err := h.automations.List(r.Context())
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: list})
}

func (h *Handler) handleGetAutomation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	view, err := h.automations.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: view})
}

func (h *Handler) handleUpdateAutomation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	in, err := decodeAutomation(w, r)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	view, err := h.automations.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: view, Message: "Automation updated successfully"})
}

func (h *Handler) handleDeleteAutomation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	if err = h.automations.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, automationNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
