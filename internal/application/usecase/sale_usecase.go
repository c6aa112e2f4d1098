package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// backendDateTime formato LocalDateTime que espera el backend.
const backendDateTime = "2006-01-02T15:04:05"

// SaleUseCase registro de ventas por turno.
type SaleUseCase struct {
	repo repository.SaleRepository
	now  func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, now: time.Now}
}

// List listado paginado de ventas.
func (uc *SaleUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.SaleRecord], error) {
	return listPage(ctx, uc.repo, s, p, identity[entity.SaleRecord])
}

// Create registra las ventas de un turno a nombre del empleado de la sesión.
// Sin fecha se usa el momento actual.
func (uc *SaleUseCase) Create(ctx context.Context, s *session.Session, in dto.SaleRequest) (*entity.SaleRecord, error) {
	in.ProductName = strings.TrimSpace(in.ProductName)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	at := uc.now()
	if strings.TrimSpace(in.DateTime) != "" {
		parsed, err := entity.ParseTimestamp(in.DateTime)
		if err != nil {
			return nil, validation.Fail("date_time", "fecha-hora no reconocida")
		}
		at = parsed
	}

	rec := entity.SaleRecord{
		OrganizationID:   s.OrganizationID,
		EmpID:            s.EmpID,
		ProductName:      in.ProductName,
		Guns:             in.Guns,
		SalesInLiters:    in.SalesInLiters,
		SalesInRupees:    in.SalesInRupees,
		CashReceived:     in.CashReceived,
		PhonePay:         in.PhonePay,
		CreditCard:       in.CreditCard,
		ShortCollections: in.ShortCollections,
		DateTime:         entity.Timestamp{Time: at},
	}
	created, err := uc.repo.Create(ctx, s.Scope(), map[string]any{
		"organizationId":   rec.OrganizationID,
		"empId":            rec.EmpID,
		"productName":      rec.ProductName,
		"guns":             rec.Guns,
		"salesInLiters":    rec.SalesInLiters,
		"salesInRupees":    rec.SalesInRupees,
		"cashReceived":     rec.CashReceived,
		"phonePay":         rec.PhonePay,
		"creditCard":       rec.CreditCard,
		"shortCollections": rec.ShortCollections,
		"dateTime":         at.Local().Format(backendDateTime),
	})
	if err != nil {
		return nil, fmt.Errorf("sales: registrar: %w", err)
	}
	out := orSent(created, rec)
	return &out, nil
}
