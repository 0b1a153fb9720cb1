package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/application/dto"
	"github.com/faguirre1/distribuidora-api/internal/domain"
	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// ProductoUseCase es el CRUD administrativo de productos. El stock agregado
// de cada producto se deriva del libro de movimientos al momento de leer;
// no existe ninguna operación que lo escriba directo.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
	stockRepo    repository.StockRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository, stockRepo repository.StockRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, stockRepo: stockRepo}
}

// Crear da de alta un producto con stock cero.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.UnidadDeMedida == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimoAlerta.LessThan(decimal.Zero) || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		EsHuevo:           in.EsHuevo,
		UnidadDeMedida:    in.UnidadDeMedida,
		UnidadesPorBulto:  in.UnidadesPorBulto,
		StockMinimoAlerta: in.StockMinimoAlerta,
		PrecioVenta:       in.PrecioVenta,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return uc.toResponse(producto, decimal.Zero), nil
}

// GetByID devuelve el producto con su stock agregado actual.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.stockActual(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(producto, total), nil
}

// List devuelve productos paginados con su stock agregado. Los totales
// salen de una sola consulta sobre el libro.
func (uc *ProductoUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	productos, err := uc.productoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	totales, err := uc.stockRepo.TotalesPorProducto()
	if err != nil {
		return nil, err
	}
	porProducto := make(map[string]decimal.Decimal, len(totales))
	for _, t := range totales {
		porProducto[t.ProductoID] = t.Total
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		total, ok := porProducto[p.ID]
		if !ok {
			total = decimal.Zero
		}
		items = append(items, *uc.toResponse(p, total))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Actualizar aplica cambios parciales. El stock y el costo de última compra
// no son escribibles por acá.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.UnidadDeMedida != nil {
		producto.UnidadDeMedida = *in.UnidadDeMedida
	}
	if in.UnidadesPorBulto != nil {
		producto.UnidadesPorBulto = *in.UnidadesPorBulto
	}
	if in.StockMinimoAlerta != nil {
		if in.StockMinimoAlerta.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimoAlerta = *in.StockMinimoAlerta
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto.PrecioVenta = *in.PrecioVenta
	}
	producto.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	total, err := uc.stockActual(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(producto, total), nil
}

// Eliminar borra el producto. La historia de movimientos lo sigue
// referenciando: el libro es append-only y no se reescribe.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id string) error {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Delete(id)
}

func (uc *ProductoUseCase) stockActual(productoID string) (decimal.Decimal, error) {
	totales, err := uc.stockRepo.TotalesPorProducto()
	if err != nil {
		return decimal.Zero, err
	}
	for _, t := range totales {
		if t.ProductoID == productoID {
			return t.Total, nil
		}
	}
	return decimal.Zero, nil
}

func (uc *ProductoUseCase) toResponse(p *entity.Producto, stockActual decimal.Decimal) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ProductoID:        p.ID,
		Nombre:            p.Nombre,
		EsHuevo:           p.EsHuevo,
		UnidadDeMedida:    p.UnidadDeMedida,
		UnidadesPorBulto:  p.UnidadesPorBulto,
		StockActual:       stockActual,
		StockMinimoAlerta: p.StockMinimoAlerta,
		CostoUltimaCompra: p.CostoUltimaCompra,
		PrecioVenta:       p.PrecioVenta,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
