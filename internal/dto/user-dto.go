package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Login        string      `json:"login" validate:"required,login"`
	Fio          string      `json:"fio" validate:"omitempty,max=255"`
	Password     string      `json:"password" validate:"required,min=6,max=72"`
	DepartmentID null.Uint64 `json:"department_id"`
}

type UpdateUserDTO struct {
	Login        *string     `json:"login" validate:"omitempty,login"`
	Fio          *string     `json:"fio" validate:"omitempty,max=255"`
	Password     *string     `json:"password" validate:"omitempty,min=6,max=72"`
	DepartmentID null.Uint64 `json:"department_id"`
}
