package httpadapter

import (
	"net/http"
	"time"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

const campaignNotFound = "Campaign not found"

type campaignResponse struct {
	ID           int64     `json:"id"`
	CampaignName string    `json:"campaignName"`
	SubjectLine  string    `json:"subjectLine"`
	EmailContent string    `json:"emailContent"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		CampaignName: c.Name,
		SubjectLine:  c.SubjectLine,
		EmailContent: c.EmailContent,
		CreatedAt:    c.CreatedAt,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	c, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	h.writeJSON(w, http.StatusCreated, envelope{Data: toCampaignResponse(*c), Message: "Campaign created successfully"})
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.List(r.Context())
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: out})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: toCampaignResponse(*c)})
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	var in port.CampaignInput
	if err = decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	c, err := h.campaigns.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Data: toCampaignResponse(*c), Message: "Campaign updated successfully"})
}

// handleDeleteCampaign answers 409 while an automation still references
// the campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	if err = h.campaigns.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, campaignNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
