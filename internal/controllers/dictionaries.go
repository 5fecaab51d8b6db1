package controllers

import (
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/services"
)

type (
	OrganizationController = CRUDController[entities.Organization, dto.CreateOrganizationDTO, dto.UpdateOrganizationDTO]
	DepartmentController   = CRUDController[entities.Department, dto.CreateDepartmentDTO, dto.UpdateDepartmentDTO]
	PlaceController        = CRUDController[entities.Place, dto.CreatePlaceDTO, dto.UpdatePlaceDTO]
	UserController         = CRUDController[entities.User, dto.CreateUserDTO, dto.UpdateUserDTO]
	VendorController       = CRUDController[entities.Vendor, dto.CreateVendorDTO, dto.UpdateVendorDTO]
	NomenclatureController = CRUDController[entities.Nomenclature, dto.CreateNomenclatureDTO, dto.UpdateNomenclatureDTO]
	InvoiceController      = CRUDController[entities.Invoice, dto.CreateInvoiceDTO, dto.UpdateInvoiceDTO]
)

func NewOrganizationController(service services.OrganizationServiceInterface, logger *zap.Logger) *OrganizationController {
	return newCRUDController[entities.Organization, dto.CreateOrganizationDTO, dto.UpdateOrganizationDTO](service, CRUDMessages{
		List:    "Список организаций",
		Found:   "Организация найдена",
		Created: "Организация создана",
		Updated: "Организация обновлена",
		Deleted: "Организация удалена",
	}, logger)
}

func NewDepartmentController(service services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return newCRUDController[entities.Department, dto.CreateDepartmentDTO, dto.UpdateDepartmentDTO](service, CRUDMessages{
		List:    "Список подразделений",
		Found:   "Подразделение найдено",
		Created: "Подразделение создано",
		Updated: "Подразделение обновлено",
		Deleted: "Подразделение удалено",
	}, logger)
}

func NewPlaceController(service services.PlaceServiceInterface, logger *zap.Logger) *PlaceController {
	return newCRUDController[entities.Place, dto.CreatePlaceDTO, dto.UpdatePlaceDTO](service, CRUDMessages{
		List:    "Список складов",
		Found:   "Склад найден",
		Created: "Склад создан",
		Updated: "Склад обновлен",
		Deleted: "Склад удален",
	}, logger)
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return newCRUDController[entities.User, dto.CreateUserDTO, dto.UpdateUserDTO](service, CRUDMessages{
		List:    "Список пользователей",
		Found:   "Пользователь найден",
		Created: "Пользователь создан",
		Updated: "Пользователь обновлен",
		Deleted: "Пользователь удален",
	}, logger)
}

func NewVendorController(service services.VendorServiceInterface, logger *zap.Logger) *VendorController {
	return newCRUDController[entities.Vendor, dto.CreateVendorDTO, dto.UpdateVendorDTO](service, CRUDMessages{
		List:    "Список производителей",
		Found:   "Производитель найден",
		Created: "Производитель создан",
		Updated: "Производитель обновлен",
		Deleted: "Производитель удален",
	}, logger)
}

func NewNomenclatureController(service services.NomenclatureServiceInterface, logger *zap.Logger) *NomenclatureController {
	return newCRUDController[entities.Nomenclature, dto.CreateNomenclatureDTO, dto.UpdateNomenclatureDTO](service, CRUDMessages{
		List:    "Список номенклатуры",
		Found:   "Номенклатура найдена",
		Created: "Номенклатура создана",
		Updated: "Номенклатура обновлена",
		Deleted: "Номенклатура удалена",
	}, logger)
}

func NewInvoiceController(service services.InvoiceServiceInterface, logger *zap.Logger) *InvoiceController {
	return newCRUDController[entities.Invoice, dto.CreateInvoiceDTO, dto.UpdateInvoiceDTO](service, CRUDMessages{
		List:    "Список накладных",
		Found:   "Накладная найдена",
		Created: "Накладная создана",
		Updated: "Накладная обновлена",
		Deleted: "Накладная удалена",
	}, logger)
}
