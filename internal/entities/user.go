package entities

import "inventory-system/pkg/types"

// User - материально ответственное лицо (МОЛ).
type User struct {
	ID           uint64  `json:"id"`
	Login        string  `json:"login"`
	Fio          string  `json:"fio"`
	PasswordHash string  `json:"-"`
	DepartmentID *uint64 `json:"department_id"`

	types.BaseEntity
}

// DisplayName - ФИО, а если оно не заполнено, то логин.
func (u *User) DisplayName() string {
	if u.Fio != "" {
		return u.Fio
	}
	return u.Login
}
