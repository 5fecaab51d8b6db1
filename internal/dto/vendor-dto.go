package dto

type CreateVendorDTO struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateVendorDTO struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}
