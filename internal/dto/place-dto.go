package dto

type CreatePlaceDTO struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

type UpdatePlaceDTO struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}
