package seeders

const demoPassword = "demo123"

var organizationsData = []struct {
	Name      string
	ShortName string
	INN       string
}{
	{Name: "Государственное бюджетное учреждение \"Центр информационных технологий\"", ShortName: "ГБУ ЦИТ", INN: "7701234567"},
}

var placesData = []struct {
	Name    string
	Address string
}{
	{Name: "Центральный склад", Address: "ул. Складская, 1"},
	{Name: "Склад ИТ", Address: "ул. Ленина, 10, подвал"},
}

var vendorsData = []string{"Dell", "HP", "Lenovo", "Samsung", "Kyocera"}

var nomenclaturesData = []struct {
	Name     string
	Vendor   string
	Category int16
}{
	{Name: "Ноутбуки", Vendor: "Lenovo", Category: 1},
	{Name: "Системные блоки", Vendor: "Dell", Category: 1},
	{Name: "Мониторы", Vendor: "Samsung", Category: 2},
	{Name: "Принтеры и МФУ", Vendor: "Kyocera", Category: 2},
}

var demoDepartment = struct {
	Name      string
	Custodian string
}{Name: "IT Отдел", Custodian: "ivanov"}

var demoUsersData = []struct {
	Login string
	Fio   string
}{
	{Login: "ivanov", Fio: "Иванов Иван Иванович"},
	{Login: "petrov", Fio: "Петров Петр Петрович"},
}

var demoEquipmentData = []struct {
	Name            string
	Nomenclature    string
	Place           string
	Owner           string
	InventoryNumber string
	SerialNumber    string
	Cost            string
	AcquiredAt      string
	UnitName        string
	UnitCode        string
}{
	{"Ноутбук Lenovo ThinkPad E14", "Ноутбуки", "Склад ИТ", "ivanov", "ИТ-000101", "PF3XK12A", "100.00", "2023-02-10", "шт", "796"},
	{"Ноутбук Lenovo ThinkPad E15", "Ноутбуки", "Склад ИТ", "ivanov", "ИТ-000102", "PF3XK98B", "250.50", "2023-02-10", "шт", "796"},
	{"Монитор Samsung 24\"", "Мониторы", "Центральный склад", "ivanov", "ИТ-000201", "ZZ01933", "15499.90", "2023-03-01", "шт", "796"},
	{"МФУ Kyocera M2040dn", "Принтеры и МФУ", "Центральный склад", "petrov", "ИТ-000301", "VCF9Y04412", "32100.00", "", "шт", "796"},
}

var demoInvoicesData = []struct {
	Number       string
	TransferType string
	Date         string
	From         string
	To           string
	Place        string
	Equipment    []string
}{
	{Number: "12", TransferType: "warehouse_to_custodian", Date: "2023-02-15", To: "ivanov", Place: "Склад ИТ", Equipment: []string{"ИТ-000101", "ИТ-000102"}},
	{Number: "31", TransferType: "custodian_to_custodian", Date: "2023-04-03", From: "petrov", To: "ivanov", Equipment: []string{"ИТ-000201"}},
}
