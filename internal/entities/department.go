package entities

import "inventory-system/pkg/types"

// Department - подразделение, в разрезе которого строится форма 8.
type Department struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	OrganizationID uint64  `json:"organization_id"`
	CustodianID    *uint64 `json:"custodian_id"`

	types.BaseEntity
}
