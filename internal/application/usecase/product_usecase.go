package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos/tanques.
type ProductUseCase struct {
	repo repository.Collection[entity.Product]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.Collection[entity.Product]) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List listado paginado de productos.
func (uc *ProductUseCase) List(ctx context.Context, s *session.Session, p dto.PageRequest) (*dto.ListResponse[dto.ProductResponse], error) {
	return listPage(ctx, uc.repo, s, p, func(e entity.Product) dto.ProductResponse { return *inventory.ToProductResponse(e) })
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, s *session.Session, id string) (*dto.ProductResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	p, err := uc.repo.Get(ctx, s.Scope(), id)
	if err != nil {
		return nil, err
	}
	return inventory.ToProductResponse(*p), nil
}

// Create crea un producto. El nivel inicial no puede superar la capacidad.
func (uc *ProductUseCase) Create(ctx context.Context, s *session.Session, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.ProductName = strings.TrimSpace(in.ProductName)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validation.LevelWithinCapacity(in.CurrentLevel, in.TankCapacity); err != nil {
		return nil, err
	}
	p := entity.Product{
		OrganizationID: s.OrganizationID,
		ProductName:    in.ProductName,
		Price:          in.Price,
		TankCapacity:   in.TankCapacity,
		CurrentLevel:   in.CurrentLevel,
		Metric:         in.Metric,
		Supplier:       in.Supplier,
		Description:    in.Description,
		Status:         true,
	}
	if in.Status != nil {
		p.Status = entity.Flag(*in.Status)
	}
	created, err := uc.repo.Create(ctx, s.Scope(), map[string]any{
		"productName":    p.ProductName,
		"price":          p.Price,
		"tankCapacity":   p.TankCapacity,
		"currentLevel":   p.CurrentLevel,
		"metric":         p.Metric,
		"supplier":       p.Supplier,
		"description":    p.Description,
		"status":         bool(p.Status),
		"organizationId": p.OrganizationID,
	})
	if err != nil {
		return nil, fmt.Errorf("products: crear: %w", err)
	}
	return inventory.ToProductResponse(orSent(created, p)), nil
}

// Update aplica los campos presentes sobre el producto actual y lo envía completo.
func (uc *ProductUseCase) Update(ctx context.Context, s *session.Session, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.Get(ctx, s.Scope(), id)
	if err != nil {
		return nil, err
	}
	if in.ProductName != nil {
		p.ProductName = strings.TrimSpace(*in.ProductName)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.TankCapacity != nil {
		p.TankCapacity = *in.TankCapacity
	}
	if in.CurrentLevel != nil {
		p.CurrentLevel = *in.CurrentLevel
	}
	if in.Metric != nil {
		p.Metric = *in.Metric
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = entity.Flag(*in.Status)
	}
	if err := validation.LevelWithinCapacity(p.CurrentLevel, p.TankCapacity); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, s.Scope(), id, p)
	if err != nil {
		return nil, fmt.Errorf("products: actualizar: %w", err)
	}
	return inventory.ToProductResponse(orSent(updated, *p)), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, s *session.Session, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, s.Scope(), id); err != nil {
		return fmt.Errorf("products: eliminar: %w", err)
	}
	return nil
}
