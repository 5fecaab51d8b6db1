package dto

type CreateOrganizationDTO struct {
	Name      string `json:"name" validate:"required,max=255"`
	ShortName string `json:"short_name" validate:"omitempty,max=100"`
	INN       string `json:"inn" validate:"omitempty,numeric,min=9,max=14"`
}

type UpdateOrganizationDTO struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	ShortName *string `json:"short_name" validate:"omitempty,max=100"`
	INN       *string `json:"inn" validate:"omitempty,numeric,min=9,max=14"`
}
