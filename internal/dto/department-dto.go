package dto

import "github.com/aarondl/null/v8"

type CreateDepartmentDTO struct {
	Name           string      `json:"name" validate:"required,max=255"`
	OrganizationID uint64      `json:"organization_id" validate:"required"`
	CustodianID    null.Uint64 `json:"custodian_id"`
}

type UpdateDepartmentDTO struct {
	Name           *string     `json:"name" validate:"omitempty,max=255"`
	OrganizationID *uint64     `json:"organization_id" validate:"omitempty,gt=0"`
	CustodianID    null.Uint64 `json:"custodian_id"`
}
