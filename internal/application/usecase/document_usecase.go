package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// DocumentUseCase documentos regulatorios de la estación.
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// List listado paginado de documentos.
func (uc *DocumentUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.Document], error) {
	return listPage(ctx, uc.repo, s, p, identity[entity.Document])
}

// Lifecycle estado de vigencia calculado por el backend.
func (uc *DocumentUseCase) Lifecycle(ctx context.Context, s *session.Session) ([]entity.DocumentLifecycle, error) {
	out, err := uc.repo.LifecycleStatus(ctx, s.Scope())
	if err != nil {
		return nil, fmt.Errorf("documents: vigencia: %w", err)
	}
	if out == nil {
		out = []entity.DocumentLifecycle{}
	}
	return out, nil
}

// Create registra un documento. La emisión no puede ser posterior al vencimiento.
func (uc *DocumentUseCase) Create(ctx context.Context, s *session.Session, in dto.DocumentRequest) (*entity.Document, error) {
	doc, err := buildDocument(s, in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, s.Scope(), documentPayload(doc))
	if err != nil {
		return nil, fmt.Errorf("documents: crear: %w", err)
	}
	out := orSent(created, doc)
	return &out, nil
}

// Update reemplaza el documento.
func (uc *DocumentUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.DocumentRequest) (*entity.Document, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	doc, err := buildDocument(s, in)
	if err != nil {
		return nil, err
	}
	doc.ID = entity.ID(id)
	updated, err := uc.repo.Update(ctx, s.Scope(), id, documentPayload(doc))
	if err != nil {
		return nil, fmt.Errorf("documents: actualizar: %w", err)
	}
	out := orSent(updated, doc)
	return &out, nil
}

// Delete elimina un documento.
func (uc *DocumentUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("documents: eliminar: %w", err)
	}
	return nil
}

func buildDocument(s *session.Session, in dto.DocumentRequest) (entity.Document, error) {
	in.DocumentType = strings.TrimSpace(in.DocumentType)
	in.IssuingAuthority = strings.TrimSpace(in.IssuingAuthority)
	in.ResponsibleParty = strings.TrimSpace(in.ResponsibleParty)
	if err := validation.Struct(in); err != nil {
		return entity.Document{}, err
	}
	issued, err := validation.ParseDate("issued_date", in.IssuedDate)
	if err != nil {
		return entity.Document{}, err
	}
	expiry, err := validation.ParseDate("expiry_date", in.ExpiryDate)
	if err != nil {
		return entity.Document{}, err
	}
	if err := validation.DateOrder("issued_date", issued, "expiry_date", expiry); err != nil {
		return entity.Document{}, err
	}
	return entity.Document{
		OrganizationID:    s.OrganizationID,
		DocumentType:      in.DocumentType,
		IssuingAuthority:  in.IssuingAuthority,
		IssuedDate:        entity.NewDate(issued),
		ExpiryDate:        entity.NewDate(expiry),
		RenewalPeriodDays: in.RenewalPeriodDays,
		ResponsibleParty:  in.ResponsibleParty,
		FileURL:           in.FileURL,
		Notes:             in.Notes,
	}, nil
}

func documentPayload(d entity.Document) map[string]any {
	m := map[string]any{
		"organizationId":    d.OrganizationID,
		"documentType":      d.DocumentType,
		"issuingAuthority":  d.IssuingAuthority,
		"issuedDate":        d.IssuedDate,
		"expiryDate":        d.ExpiryDate,
		"renewalPeriodDays": d.RenewalPeriodDays,
		"responsibleParty":  d.ResponsibleParty,
		"fileUrl":           d.FileURL,
		"notes":             d.Notes,
	}
	if d.ID != "" {
		m["id"] = d.ID
	}
	return m
}
