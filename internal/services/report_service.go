package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/reports/form8"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/metrics"
)

const (
	ReportForm8 = "form8"

	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// ReportFile - готовый к отдаче файл отчета.
type ReportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Form8Data - содержимое формы 8 без рендеринга (format=json).
type Form8Data struct {
	Header form8.Header  `json:"header"`
	Groups []form8.Group `json:"groups"`
}

type ReportServiceInterface interface {
	Form8Data(ctx context.Context, departmentID uint64) (*Form8Data, error)
	Form8File(ctx context.Context, departmentID uint64, format string) (*ReportFile, error)
}

type reportService struct {
	departmentRepo   repositories.DepartmentRepositoryInterface
	organizationRepo repositories.OrganizationRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	equipmentRepo    repositories.EquipmentRepositoryInterface
	lookup           form8.Lookup
	renderers        map[string]form8.Renderer
	metrics          *metrics.ReportMetrics
	location         *time.Location
	now              func() time.Time
	logger           *zap.Logger
}

func NewReportService(
	departmentRepo repositories.DepartmentRepositoryInterface,
	organizationRepo repositories.OrganizationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	lookup form8.Lookup,
	fonts form8.FontSet,
	reportMetrics *metrics.ReportMetrics,
	location *time.Location,
	logger *zap.Logger,
) ReportServiceInterface {
	if location == nil {
		location = time.Local
	}
	return &reportService{
		departmentRepo:   departmentRepo,
		organizationRepo: organizationRepo,
		userRepo:         userRepo,
		equipmentRepo:    equipmentRepo,
		lookup:           lookup,
		renderers: map[string]form8.Renderer{
			FormatPDF:  form8.NewPDFRenderer(fonts),
			FormatXLSX: form8.NewXLSXRenderer(),
		},
		metrics:  reportMetrics,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *reportService) Form8Data(ctx context.Context, departmentID uint64) (data *Form8Data, err error) {
	started := time.Now()
	defer func() { s.metrics.Observe(ReportForm8, FormatJSON, started, err) }()

	_, data, err = s.collectForm8(ctx, departmentID)
	return data, err
}

// Form8File собирает форму 8 подразделения и рендерит ее в pdf (по умолчанию) или xlsx.
func (s *reportService) Form8File(ctx context.Context, departmentID uint64, format string) (file *ReportFile, err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, apperrors.NewInvalidInputError("неподдерживаемый формат отчета: %q", format)
	}

	started := time.Now()
	defer func() { s.metrics.Observe(ReportForm8, format, started, err) }()

	dept, data, err := s.collectForm8(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(form8.Layout(data.Header, data.Groups))
	if err != nil {
		s.logger.Error("Ошибка рендеринга формы 8", zap.Uint64("department_id", departmentID), zap.String("format", format), zap.Error(err))
		return nil, fmt.Errorf("рендеринг формы 8: %w", err)
	}

	file = &ReportFile{
		Name:        form8.FileName(dept.Name, s.now().In(s.location), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        content,
	}
	s.logger.Info("Форма 8 сформирована",
		zap.Uint64("department_id", departmentID),
		zap.String("file", file.Name),
		zap.Int("groups", len(data.Groups)),
		zap.Int("bytes", len(content)),
	)
	return file, nil
}

func (s *reportService) collectForm8(ctx context.Context, departmentID uint64) (*entities.Department, *Form8Data, error) {
	dept, err := s.departmentRepo.FindByID(ctx, nil, departmentID)
	if err != nil {
		return nil, nil, err
	}

	header, err := s.form8Header(ctx, dept)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.equipmentRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("загрузка оборудования подразделения: %w", err)
	}
	if len(items) == 0 {
		s.logger.Warn("Нет оборудования для формы 8", zap.Uint64("department_id", departmentID))
	}

	groups, err := form8.NewAggregator(s.lookup, s.logger).Aggregate(ctx, items)
	if err != nil {
		return nil, nil, err
	}
	return dept, &Form8Data{Header: header, Groups: groups}, nil
}

// В шапке отсутствующие организация и МОЛ дают пустые строки.
func (s *reportService) form8Header(ctx context.Context, dept *entities.Department) (form8.Header, error) {
	header := form8.Header{Department: dept.Name}

	org, err := s.organizationRepo.FindByID(ctx, nil, dept.OrganizationID)
	switch {
	case err == nil:
		header.Institution = org.Name
	case !errors.Is(err, apperrors.ErrNotFound):
		return header, fmt.Errorf("загрузка организации %d: %w", dept.OrganizationID, err)
	}

	if dept.CustodianID != nil {
		custodian, err := s.userRepo.FindByID(ctx, nil, *dept.CustodianID)
		switch {
		case err == nil:
			header.Custodian = custodian.DisplayName()
		case !errors.Is(err, apperrors.ErrNotFound):
			return header, fmt.Errorf("загрузка МОЛ %d: %w", *dept.CustodianID, err)
		}
	}
	return header, nil
}
