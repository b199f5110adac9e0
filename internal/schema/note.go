package schema

import (
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/validation"
)

type CreateNoteInput struct {
	Content       string  `json:"content" validate:"required,min=1,max=5000"`
	AttachmentURL *string `json:"attachmentUrl" validate:"omitempty,urlorempty"`
}

func (in CreateNoteInput) Note(sellerID string) models.InternalNote {
	return models.InternalNote{SellerID: sellerID, Content: in.Content, AttachmentURL: in.AttachmentURL}
}

type UpdateNoteInput struct {
	Content       validation.NotNull[string]  `json:"content" validate:"omitempty,min=1,max=5000"`
	AttachmentURL validation.Nullable[string] `json:"attachmentUrl" validate:"omitempty,urlorempty"`
}

func (in UpdateNoteInput) Changes() map[string]any {
	c := changes{}
	set(c, "content", in.Content)
	setOrClear(c, "attachment_url", in.AttachmentURL)
	return c
}

// LifecycleInput appends a stage entry; there is no update form.
type LifecycleInput struct {
	Marketplace string `json:"marketplace" validate:"required,min=1,max=100"`
	Stage       string `json:"stage" validate:"required,min=1,max=100"`
}

func (in LifecycleInput) Entry(sellerID string) models.LifecycleHistory {
	return models.LifecycleHistory{SellerID: sellerID, Marketplace: in.Marketplace, Stage: in.Stage}
}
