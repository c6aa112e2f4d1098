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

// ExpenseUseCase gastos operativos y su aprobación.
type ExpenseUseCase struct {
	repo repository.Collection[entity.Expense]
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.Collection[entity.Expense]) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// List listado paginado de gastos.
func (uc *ExpenseUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.Expense], error) {
	return listPage(ctx, uc.repo, s, p, identity[entity.Expense])
}

// Create registra un gasto. Sin estado queda pendiente y sin solicitante usa el usuario de la sesión.
func (uc *ExpenseUseCase) Create(ctx context.Context, s *session.Session, in dto.ExpenseRequest) (*entity.Expense, error) {
	e, err := uc.build(s, in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, s.Scope(), expensePayload(e))
	if err != nil {
		return nil, fmt.Errorf("expenses: crear: %w", err)
	}
	out := orSent(created, e)
	return &out, nil
}

// Update reemplaza el gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.ExpenseRequest) (*entity.Expense, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	e, err := uc.build(s, in)
	if err != nil {
		return nil, err
	}
	e.ID = entity.ID(id)
	updated, err := uc.repo.Update(ctx, s.Scope(), id, expensePayload(e))
	if err != nil {
		return nil, fmt.Errorf("expenses: actualizar: %w", err)
	}
	out := orSent(updated, e)
	return &out, nil
}

// SetStatus aprueba, rechaza o devuelve a pendiente un gasto.
func (uc *ExpenseUseCase) SetStatus(ctx context.Context, s *session.Session, id string, in dto.ExpenseStatusRequest) (*entity.Expense, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e, err := uc.repo.Get(ctx, s.Scope(), id)
	if err != nil {
		return nil, err
	}
	e.Status = in.Status
	switch {
	case in.Status == entity.ExpensePending:
		e.ApprovedBy = ""
	case strings.TrimSpace(in.ApprovedBy) != "":
		e.ApprovedBy = strings.TrimSpace(in.ApprovedBy)
	default:
		e.ApprovedBy = s.Username
	}
	updated, err := uc.repo.Update(ctx, s.Scope(), id, expensePayload(*e))
	if err != nil {
		return nil, fmt.Errorf("expenses: cambiar estado: %w", err)
	}
	out := orSent(updated, *e)
	return &out, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("expenses: eliminar: %w", err)
	}
	return nil
}

func (uc *ExpenseUseCase) build(s *session.Session, in dto.ExpenseRequest) (entity.Expense, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if err := validation.Struct(in); err != nil {
		return entity.Expense{}, err
	}
	date, err := validation.ParseDate("date", in.Date)
	if err != nil {
		return entity.Expense{}, err
	}
	e := entity.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        entity.NewDate(date),
		RequestedBy: strings.TrimSpace(in.RequestedBy),
		Status:      in.Status,
		Receipt:     in.Receipt,
	}
	if e.Status == "" {
		e.Status = entity.ExpensePending
	}
	if e.RequestedBy == "" {
		e.RequestedBy = s.Username
	}
	return e, nil
}

func expensePayload(e entity.Expense) map[string]any {
	m := map[string]any{
		"description": e.Description,
		"amount":      e.Amount,
		"category":    e.Category,
		"date":        e.Date,
		"requestedBy": e.RequestedBy,
		"approvedBy":  e.ApprovedBy,
		"status":      e.Status,
		"receipt":     e.Receipt,
	}
	if e.ID != "" {
		m["id"] = e.ID
	}
	return m
}
