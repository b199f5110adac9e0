package schema

import (
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/validation"
)

type CreateDocumentInput struct {
	FileName string  `json:"fileName" validate:"required,min=1,max=255"`
	FileURL  string  `json:"fileUrl" validate:"required,url"`
	Tags     *string `json:"tags" validate:"required,max=500"`
}

func (in CreateDocumentInput) Document(sellerID string) models.Document {
	return models.Document{SellerID: sellerID, FileName: in.FileName, FileURL: in.FileURL, Tags: *in.Tags}
}

type UpdateDocumentInput struct {
	FileName validation.NotNull[string] `json:"fileName" validate:"omitempty,min=1,max=255"`
	FileURL  validation.NotNull[string] `json:"fileUrl" validate:"omitempty,url"`
	Tags     validation.NotNull[string] `json:"tags" validate:"omitempty,max=500"`
}

func (in UpdateDocumentInput) Changes() map[string]any {
	c := changes{}
	set(c, "file_name", in.FileName)
	set(c, "file_url", in.FileURL)
	set(c, "tags", in.Tags)
	return c
}

type CreateProposalInput struct {
	FileName  string `json:"fileName" validate:"required,min=1,max=255"`
	FileURL   string `json:"fileUrl" validate:"required,url"`
	Shareable bool   `json:"shareable"`
}

func (in CreateProposalInput) Proposal(sellerID string) models.Proposal {
	return models.Proposal{SellerID: sellerID, FileName: in.FileName, FileURL: in.FileURL, Shareable: in.Shareable}
}

type UpdateProposalInput struct {
	FileName  validation.NotNull[string] `json:"fileName" validate:"omitempty,min=1,max=255"`
	FileURL   validation.NotNull[string] `json:"fileUrl" validate:"omitempty,url"`
	Shareable validation.NotNull[bool]   `json:"shareable"`
}

func (in UpdateProposalInput) Changes() map[string]any {
	c := changes{}
	set(c, "file_name", in.FileName)
	set(c, "file_url", in.FileURL)
	set(c, "shareable", in.Shareable)
	return c
}
