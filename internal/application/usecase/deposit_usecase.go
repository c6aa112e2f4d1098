package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

// ReceiptURLTTL duración de la URL firmada de descarga.
const ReceiptURLTTL = 60 * time.Second

// URLRepair corrige una URL firmada antes de entregarla al navegador.
type URLRepair func(raw string) string

// DepositUseCase depósitos bancarios y sus comprobantes.
type DepositUseCase struct {
	repo   repository.BankDepositRepository
	repair URLRepair
	log    *logger.Logger
}

// NewDepositUseCase construye el caso de uso. repair nil deja la URL tal cual.
func NewDepositUseCase(repo repository.BankDepositRepository, repair URLRepair, log *logger.Logger) *DepositUseCase {
	if repair == nil {
		repair = func(raw string) string { return raw }
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DepositUseCase{repo: repo, repair: repair, log: log.Component("deposits")}
}

// List listado paginado de depósitos.
func (uc *DepositUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.BankDeposit], error) {
	return listPage(ctx, uc.repo, s, p, identity[entity.BankDeposit])
}

// Create registra un depósito. El monto debe ser positivo.
func (uc *DepositUseCase) Create(ctx context.Context, s *session.Session, in dto.DepositRequest) (*entity.BankDeposit, error) {
	d, err := buildDeposit(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, s.Scope(), depositPayload(d))
	if err != nil {
		return nil, fmt.Errorf("deposits: crear: %w", err)
	}
	out := orSent(created, d)
	return &out, nil
}

// Update reemplaza el depósito.
func (uc *DepositUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.DepositRequest) (*entity.BankDeposit, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	d, err := buildDeposit(in)
	if err != nil {
		return nil, err
	}
	d.ID = entity.ID(id)
	updated, err := uc.repo.Update(ctx, s.Scope(), id, depositPayload(d))
	if err != nil {
		return nil, fmt.Errorf("deposits: actualizar: %w", err)
	}
	out := orSent(updated, d)
	return &out, nil
}

// Delete elimina un depósito.
func (uc *DepositUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("deposits: eliminar: %w", err)
	}
	return nil
}

// UploadReceipt sube un comprobante de hasta 10 MB y devuelve la URL almacenada.
func (uc *DepositUseCase) UploadReceipt(ctx context.Context, s *session.Session, filename string, size int64, content io.Reader) (*dto.UploadResponse, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, validation.Fail("file", "nombre de archivo requerido")
	}
	if err := validation.FileSize(size); err != nil {
		return nil, err
	}
	u, err := uc.repo.UploadReceipt(ctx, s.Scope(), filename, io.LimitReader(content, validation.MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("deposits: subir comprobante: %w", err)
	}
	return &dto.UploadResponse{FileURL: u}, nil
}

// DownloadReceipt pide una URL firmada y la repara. Si el backend no la entrega
// se usa el receiptUrl guardado en el depósito.
func (uc *DepositUseCase) DownloadReceipt(ctx context.Context, s *session.Session, id string) (*dto.DownloadResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	signed, err := uc.repo.DownloadURL(ctx, s.Scope(), id, ReceiptURLTTL)
	if err == nil {
		return &dto.DownloadResponse{URL: uc.repair(signed)}, nil
	}
	uc.log.Warn().Err(err).Str("deposit", id).Msg("URL firmada no disponible, se usa receiptUrl")

	d, getErr := uc.repo.Get(ctx, s.Scope(), id)
	if getErr != nil {
		return nil, fmt.Errorf("deposits: URL de descarga: %w", err)
	}
	if strings.TrimSpace(d.ReceiptURL) == "" {
		return nil, fmt.Errorf("deposits: depósito %s sin comprobante: %w", id, domain.ErrNotFound)
	}
	return &dto.DownloadResponse{URL: uc.repair(d.ReceiptURL), Fallback: true}, nil
}

func buildDeposit(in dto.DepositRequest) (entity.BankDeposit, error) {
	in.BankName = strings.TrimSpace(in.BankName)
	in.AccountNumber = strings.TrimSpace(in.AccountNumber)
	in.DepositedBy = strings.TrimSpace(in.DepositedBy)
	if err := validation.Struct(in); err != nil {
		return entity.BankDeposit{}, err
	}
	date, err := validation.ParseDate("deposit_date", in.DepositDate)
	if err != nil {
		return entity.BankDeposit{}, err
	}
	return entity.BankDeposit{
		DepositDate:     entity.NewDate(date),
		Amount:          in.Amount,
		BankName:        in.BankName,
		AccountNumber:   in.AccountNumber,
		ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
		DepositedBy:     in.DepositedBy,
		Notes:           in.Notes,
		ReceiptURL:      in.ReceiptURL,
	}, nil
}

func depositPayload(d entity.BankDeposit) map[string]any {
	m := map[string]any{
		"depositDate":     d.DepositDate,
		"amount":          d.Amount,
		"bankName":        d.BankName,
		"accountNumber":   d.AccountNumber,
		"referenceNumber": d.ReferenceNumber,
		"depositedBy":     d.DepositedBy,
		"notes":           d.Notes,
		"receiptUrl":      d.ReceiptURL,
	}
	if d.ID != "" {
		m["id"] = d.ID
	}
	return m
}
