package entities

import (
	"encoding/json"
	"strings"
)

// TransferType - направление передачи по накладной.
type TransferType int

const (
	TransferUnspecified TransferType = iota
	TransferWarehouseToCustodian
	TransferCustodianToCustodian
	TransferCustodianToWarehouse
)

var transferCodes = map[TransferType]string{
	TransferWarehouseToCustodian: "warehouse_to_custodian",
	TransferCustodianToCustodian: "custodian_to_custodian",
	TransferCustodianToWarehouse: "custodian_to_warehouse",
}

var transferLabels = map[TransferType]string{
	TransferWarehouseToCustodian: "Склад-МОЛ",
	TransferCustodianToCustodian: "МОЛ-МОЛ",
	TransferCustodianToWarehouse: "МОЛ-Склад",
}

// ParseTransferType принимает код или русскую метку; все остальное - TransferUnspecified.
func ParseTransferType(s string) TransferType {
	s = strings.TrimSpace(s)
	for t, code := range transferCodes {
		if strings.EqualFold(s, code) || s == transferLabels[t] {
			return t
		}
	}
	return TransferUnspecified
}

// Code - значение для колонки invoices.transfer_type.
func (t TransferType) Code() string {
	return transferCodes[t]
}

func (t TransferType) String() string {
	if label, ok := transferLabels[t]; ok {
		return label
	}
	return "не указано"
}

func (t TransferType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Code())
}

func (t *TransferType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTransferType(s)
	return nil
}
