package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransferType(t *testing.T) {
	cases := map[string]TransferType{
		"warehouse_to_custodian": TransferWarehouseToCustodian,
		"CUSTODIAN_TO_CUSTODIAN": TransferCustodianToCustodian,
		"custodian_to_warehouse": TransferCustodianToWarehouse,
		"Склад-МОЛ":              TransferWarehouseToCustodian,
		"МОЛ-МОЛ":                TransferCustodianToCustodian,
		" МОЛ-Склад ":            TransferCustodianToWarehouse,
		"":                       TransferUnspecified,
		"списание":               TransferUnspecified,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseTransferType(in), "input %q", in)
	}
}

func TestTransferType_String(t *testing.T) {
	assert.Equal(t, "Склад-МОЛ", TransferWarehouseToCustodian.String())
	assert.Equal(t, "не указано", TransferUnspecified.String())
	assert.Equal(t, "", TransferUnspecified.Code())
}

func TestTransferType_JSON(t *testing.T) {
	raw, err := json.Marshal(TransferCustodianToWarehouse)
	require.NoError(t, err)
	assert.JSONEq(t, `"custodian_to_warehouse"`, string(raw))

	var parsed TransferType
	require.NoError(t, json.Unmarshal([]byte(`"МОЛ-МОЛ"`), &parsed))
	assert.Equal(t, TransferCustodianToCustodian, parsed)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Иванов И.И.", (&User{Login: "ivanov", Fio: "Иванов И.И."}).DisplayName())
	assert.Equal(t, "ivanov", (&User{Login: "ivanov"}).DisplayName())
}
