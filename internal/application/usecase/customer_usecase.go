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

// CustomerUseCase clientes a crédito y su histórico de movimientos.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List listado paginado de clientes.
func (uc *CustomerUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.Customer], error) {
	return listPage(ctx, uc.repo, s, p, identity[entity.Customer])
}

// History movimientos de préstamo y abono, paginados.
func (uc *CustomerUseCase) History(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[entity.CustomerHistory], error) {
	p.DefaultPage()
	page, err := uc.repo.History(ctx, s.Scope(), repository.ListOptions{Page: p.Page, Size: p.Size})
	if err != nil {
		return nil, fmt.Errorf("customers: histórico: %w", err)
	}
	return toListResponse(page, p, identity[entity.CustomerHistory]), nil
}

// Create da de alta un cliente a crédito.
func (uc *CustomerUseCase) Create(ctx context.Context, s *session.Session, in dto.CustomerRequest) (*entity.Customer, error) {
	c, err := buildCustomer(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, s.Scope(), customerPayload(c))
	if err != nil {
		return nil, fmt.Errorf("customers: crear: %w", err)
	}
	out := orSent(created, c)
	return &out, nil
}

// Update modifica los datos de contacto y el límite; los saldos los lleva el backend.
func (uc *CustomerUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	c, err := buildCustomer(in)
	if err != nil {
		return nil, err
	}
	c.ID = entity.ID(id)
	updated, err := uc.repo.Update(ctx, s.Scope(), id, customerPayload(c))
	if err != nil {
		return nil, fmt.Errorf("customers: actualizar: %w", err)
	}
	out := orSent(updated, c)
	return &out, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("customers: eliminar: %w", err)
	}
	return nil
}

func buildCustomer(in dto.CustomerRequest) (entity.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return entity.Customer{}, err
	}
	return entity.Customer{
		Name:        in.Name,
		Phone:       strings.TrimSpace(in.Phone),
		Email:       in.Email,
		Address:     strings.TrimSpace(in.Address),
		CreditLimit: in.CreditLimit,
	}, nil
}

func customerPayload(c entity.Customer) map[string]any {
	m := map[string]any{
		"customerName": c.Name,
		"phoneNumber":  c.Phone,
		"email":        c.Email,
		"address":      c.Address,
		"creditLimit":  c.CreditLimit,
	}
	if c.ID != "" {
		m["id"] = c.ID
	}
	return m
}
