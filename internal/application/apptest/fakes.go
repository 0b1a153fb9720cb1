// Package apptest provee dobles en memoria de los puertos de persistencia
// para los tests de la capa de aplicación. El Store simula la semántica
// transaccional de PostgreSQL: el TxRunner serializa las transacciones con
// un mutex (como lo harían los bloqueos de fila) y ante un error restaura
// el snapshot previo (rollback real, no simulado). Los repos fuera de
// transacción toman el mismo mutex por operación, así las lecturas de
// validación no carrean con una transacción en curso.
package apptest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faguirre1/distribuidora-api/internal/domain/entity"
	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// Store es el estado compartido de todos los repos fake.
type Store struct {
	mu sync.Mutex

	Productos   map[string]entity.Producto
	Clientes    map[string]entity.Cliente
	Usuarios    map[string]entity.Usuario
	Vehiculos   map[string]entity.Vehiculo
	Stock       map[string]entity.StockUbicacion // key: ubicacion|producto
	Movimientos []entity.MovimientoStock
	Ventas      map[string]entity.Venta
	Detalles    []entity.DetalleVenta
	Pagos       []entity.Pago
	Galpones    map[string]entity.Galpon
	Lotes       map[string]entity.Lote
	Eventos     []entity.EventoMortalidad
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		Productos: map[string]entity.Producto{},
		Clientes:  map[string]entity.Cliente{},
		Usuarios:  map[string]entity.Usuario{},
		Vehiculos: map[string]entity.Vehiculo{},
		Stock:     map[string]entity.StockUbicacion{},
		Ventas:    map[string]entity.Venta{},
		Galpones:  map[string]entity.Galpon{},
		Lotes:     map[string]entity.Lote{},
	}
}

// enter toma el mutex del Store salvo que el repo ya corra dentro de una
// transacción (que lo tiene tomado). Devuelve la función de salida.
func (s *Store) enter(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func stockKey(ubicacionID, productoID string) string {
	return ubicacionID + "|" + productoID
}

// SetStock fija un saldo inicial (solo para armar escenarios de test).
func (s *Store) SetStock(ubicacionID, productoID string, cantidad decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stock[stockKey(ubicacionID, productoID)] = entity.StockUbicacion{
		UbicacionID: ubicacionID,
		ProductoID:  productoID,
		Cantidad:    cantidad,
		UpdatedAt:   time.Now(),
	}
}

// GetStock devuelve el saldo actual (cero si no hay fila).
func (s *Store) GetStock(ubicacionID, productoID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.Stock[stockKey(ubicacionID, productoID)]; ok {
		return st.Cantidad
	}
	return decimal.Zero
}

// TotalStock suma el saldo de un producto en todas las ubicaciones.
func (s *Store) TotalStock(productoID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, st := range s.Stock {
		if st.ProductoID == productoID {
			total = total.Add(st.Cantidad)
		}
	}
	return total
}

func (s *Store) snapshot() *Store {
	cp := NewStore()
	for k, v := range s.Productos {
		cp.Productos[k] = v
	}
	for k, v := range s.Clientes {
		cp.Clientes[k] = v
	}
	for k, v := range s.Usuarios {
		cp.Usuarios[k] = v
	}
	for k, v := range s.Vehiculos {
		cp.Vehiculos[k] = v
	}
	for k, v := range s.Stock {
		cp.Stock[k] = v
	}
	for k, v := range s.Ventas {
		cp.Ventas[k] = v
	}
	for k, v := range s.Galpones {
		cp.Galpones[k] = v
	}
	for k, v := range s.Lotes {
		cp.Lotes[k] = v
	}
	cp.Movimientos = append([]entity.MovimientoStock(nil), s.Movimientos...)
	cp.Detalles = append([]entity.DetalleVenta(nil), s.Detalles...)
	cp.Pagos = append([]entity.Pago(nil), s.Pagos...)
	cp.Eventos = append([]entity.EventoMortalidad(nil), s.Eventos...)
	return cp
}

func (s *Store) restore(snap *Store) {
	s.Productos = snap.Productos
	s.Clientes = snap.Clientes
	s.Usuarios = snap.Usuarios
	s.Vehiculos = snap.Vehiculos
	s.Stock = snap.Stock
	s.Ventas = snap.Ventas
	s.Galpones = snap.Galpones
	s.Lotes = snap.Lotes
	s.Movimientos = snap.Movimientos
	s.Detalles = snap.Detalles
	s.Pagos = snap.Pagos
	s.Eventos = snap.Eventos
}

// TxRunner implementa los TxRunner de inventario, ventas y galpones sobre
// el Store. El mutex serializa transacciones concurrentes igual que lo
// harían los SELECT FOR UPDATE; ante error se restaura el snapshot.
type TxRunner struct {
	S *Store
}

func (r *TxRunner) run(fn func() error) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	snap := r.S.snapshot()
	if err := fn(); err != nil {
		r.S.restore(snap)
		return err
	}
	return nil
}

// Run transacción del motor de inventario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return r.run(func() error {
		return fn(
			&StockRepo{S: r.S, InTx: true},
			&MovimientoRepo{S: r.S, InTx: true},
			&ProductoRepo{S: r.S, InTx: true},
		)
	})
}

// RunVenta transacción de la liquidación de ventas.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	clienteRepo repository.ClienteRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	return r.run(func() error {
		return fn(
			&StockRepo{S: r.S, InTx: true},
			&MovimientoRepo{S: r.S, InTx: true},
			&ClienteRepo{S: r.S, InTx: true},
			&VentaRepo{S: r.S, InTx: true},
		)
	})
}

// RunPago transacción del registro de pagos.
func (r *TxRunner) RunPago(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	pagoRepo repository.PagoRepository,
) error) error {
	return r.run(func() error {
		return fn(
			&ClienteRepo{S: r.S, InTx: true},
			&PagoRepo{S: r.S, InTx: true},
		)
	})
}

// RunLote transacción del ciclo de lotes.
func (r *TxRunner) RunLote(ctx context.Context, fn func(
	galponRepo repository.GalponRepository,
	loteRepo repository.LoteRepository,
) error) error {
	return r.run(func() error {
		return fn(
			&GalponRepo{S: r.S, InTx: true},
			&LoteRepo{S: r.S, InTx: true},
		)
	})
}

// ─── Productos ────────────────────────────────────────────────────────────────

type ProductoRepo struct {
	S    *Store
	InTx bool
}

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

func (r *ProductoRepo) Create(p *entity.Producto) error {
	defer r.S.enter(r.InTx)()
	r.S.Productos[p.ID] = *p
	return nil
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	defer r.S.enter(r.InTx)()
	if p, ok := r.S.Productos[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Producto
	for _, p := range r.S.Productos {
		cp := p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return paginate(list, limit, offset), nil
}

func (r *ProductoRepo) Update(p *entity.Producto) error {
	defer r.S.enter(r.InTx)()
	r.S.Productos[p.ID] = *p
	return nil
}

func (r *ProductoRepo) UpdateCostoUltimaCompra(productoID string, costo decimal.Decimal) error {
	defer r.S.enter(r.InTx)()
	p := r.S.Productos[productoID]
	p.CostoUltimaCompra = costo
	r.S.Productos[productoID] = p
	return nil
}

func (r *ProductoRepo) Delete(id string) error {
	defer r.S.enter(r.InTx)()
	delete(r.S.Productos, id)
	return nil
}

// ─── Stock ────────────────────────────────────────────────────────────────────

type StockRepo struct {
	S    *Store
	InTx bool
}

var _ repository.StockRepository = (*StockRepo)(nil)

func (r *StockRepo) Get(ubicacionID, productoID string) (*entity.StockUbicacion, error) {
	defer r.S.enter(r.InTx)()
	return r.get(ubicacionID, productoID), nil
}

func (r *StockRepo) GetForUpdate(ubicacionID, productoID string) (*entity.StockUbicacion, error) {
	defer r.S.enter(r.InTx)()
	return r.get(ubicacionID, productoID), nil
}

func (r *StockRepo) get(ubicacionID, productoID string) *entity.StockUbicacion {
	if st, ok := r.S.Stock[stockKey(ubicacionID, productoID)]; ok {
		cp := st
		return &cp
	}
	return &entity.StockUbicacion{UbicacionID: ubicacionID, ProductoID: productoID, Cantidad: decimal.Zero}
}

func (r *StockRepo) Acreditar(ubicacionID, productoID string, cantidad decimal.Decimal) error {
	defer r.S.enter(r.InTx)()
	st := r.get(ubicacionID, productoID)
	st.Cantidad = st.Cantidad.Add(cantidad)
	st.UpdatedAt = time.Now()
	r.S.Stock[stockKey(ubicacionID, productoID)] = *st
	return nil
}

func (r *StockRepo) Upsert(stock *entity.StockUbicacion) error {
	defer r.S.enter(r.InTx)()
	r.S.Stock[stockKey(stock.UbicacionID, stock.ProductoID)] = *stock
	return nil
}

func (r *StockRepo) ListByUbicacion(ubicacionID string) ([]*entity.StockUbicacion, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.StockUbicacion
	for _, st := range r.S.Stock {
		if st.UbicacionID == ubicacionID {
			cp := st
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductoID < list[j].ProductoID })
	return list, nil
}

func (r *StockRepo) TotalesPorProducto() ([]*entity.TotalProducto, error) {
	defer r.S.enter(r.InTx)()
	totales := map[string]decimal.Decimal{}
	for _, st := range r.S.Stock {
		totales[st.ProductoID] = totales[st.ProductoID].Add(st.Cantidad)
	}
	var list []*entity.TotalProducto
	for id, total := range totales {
		list = append(list, &entity.TotalProducto{ProductoID: id, Total: total})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductoID < list[j].ProductoID })
	return list, nil
}

func (r *StockRepo) StockBajoEnVehiculos(umbral decimal.Decimal) ([]*entity.StockUbicacion, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.StockUbicacion
	for _, st := range r.S.Stock {
		if st.UbicacionID != entity.UbicacionDeposito && st.Cantidad.LessThan(umbral) {
			cp := st
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return stockKey(list[i].UbicacionID, list[i].ProductoID) < stockKey(list[j].UbicacionID, list[j].ProductoID)
	})
	return list, nil
}

// ─── Movimientos ──────────────────────────────────────────────────────────────

type MovimientoRepo struct {
	S    *Store
	InTx bool
}

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

func (r *MovimientoRepo) Create(m *entity.MovimientoStock) error {
	defer r.S.enter(r.InTx)()
	r.S.Movimientos = append(r.S.Movimientos, *m)
	return nil
}

func (r *MovimientoRepo) ListByProducto(productoID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error) {
	defer r.S.enter(r.InTx)()
	return r.filter(func(m entity.MovimientoStock) bool { return m.ProductoID == productoID }, desde, hasta, limit, offset), nil
}

func (r *MovimientoRepo) ListByUbicacion(ubicacionID string, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoStock, error) {
	defer r.S.enter(r.InTx)()
	return r.filter(func(m entity.MovimientoStock) bool {
		return (m.OrigenID != nil && *m.OrigenID == ubicacionID) || (m.DestinoID != nil && *m.DestinoID == ubicacionID)
	}, desde, hasta, limit, offset), nil
}

func (r *MovimientoRepo) ListByReferencia(referenciaID string) ([]*entity.MovimientoStock, error) {
	defer r.S.enter(r.InTx)()
	return r.filter(func(m entity.MovimientoStock) bool { return m.ReferenciaID == referenciaID }, nil, nil, 0, 0), nil
}

func (r *MovimientoRepo) filter(pred func(entity.MovimientoStock) bool, desde, hasta *time.Time, limit, offset int) []*entity.MovimientoStock {
	var list []*entity.MovimientoStock
	for _, m := range r.S.Movimientos {
		if !pred(m) {
			continue
		}
		if desde != nil && m.Fecha.Before(*desde) {
			continue
		}
		if hasta != nil && m.Fecha.After(*hasta) {
			continue
		}
		cp := m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return paginate(list, limit, offset)
}

// ─── Clientes ─────────────────────────────────────────────────────────────────

type ClienteRepo struct {
	S    *Store
	InTx bool
}

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

func (r *ClienteRepo) Create(c *entity.Cliente) error {
	defer r.S.enter(r.InTx)()
	r.S.Clientes[c.ID] = *c
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	defer r.S.enter(r.InTx)()
	if c, ok := r.S.Clientes[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *ClienteRepo) GetByDNI(dni string) (*entity.Cliente, error) {
	defer r.S.enter(r.InTx)()
	for _, c := range r.S.Clientes {
		if c.DNI == dni {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ClienteRepo) GetForUpdate(id string) (*entity.Cliente, error) {
	return r.GetByID(id)
}

func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Cliente
	for _, c := range r.S.Clientes {
		cp := c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].NombreCompleto < list[j].NombreCompleto })
	return paginate(list, limit, offset), nil
}

func (r *ClienteRepo) Update(c *entity.Cliente) error {
	defer r.S.enter(r.InTx)()
	r.S.Clientes[c.ID] = *c
	return nil
}

func (r *ClienteRepo) Delete(id string) error {
	defer r.S.enter(r.InTx)()
	delete(r.S.Clientes, id)
	return nil
}

// ─── Usuarios ─────────────────────────────────────────────────────────────────

type UsuarioRepo struct {
	S    *Store
	InTx bool
}

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	defer r.S.enter(r.InTx)()
	r.S.Usuarios[u.ID] = *u
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	defer r.S.enter(r.InTx)()
	if u, ok := r.S.Usuarios[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *UsuarioRepo) GetByDNI(dni string) (*entity.Usuario, error) {
	defer r.S.enter(r.InTx)()
	for _, u := range r.S.Usuarios {
		if u.DNI == dni {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Usuario
	for _, u := range r.S.Usuarios {
		cp := u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return paginate(list, limit, offset), nil
}

func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	defer r.S.enter(r.InTx)()
	r.S.Usuarios[u.ID] = *u
	return nil
}

// ─── Vehículos ────────────────────────────────────────────────────────────────

type VehiculoRepo struct {
	S    *Store
	InTx bool
}

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	defer r.S.enter(r.InTx)()
	r.S.Vehiculos[v.ID] = *v
	return nil
}

func (r *VehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) {
	defer r.S.enter(r.InTx)()
	if v, ok := r.S.Vehiculos[id]; ok {
		cp := v
		return &cp, nil
	}
	return nil, nil
}

func (r *VehiculoRepo) GetByPatente(patente string) (*entity.Vehiculo, error) {
	defer r.S.enter(r.InTx)()
	for _, v := range r.S.Vehiculos {
		if strings.EqualFold(v.Patente, patente) {
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *VehiculoRepo) List(limit, offset int) ([]*entity.Vehiculo, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Vehiculo
	for _, v := range r.S.Vehiculos {
		cp := v
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Patente < list[j].Patente })
	return paginate(list, limit, offset), nil
}

func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	defer r.S.enter(r.InTx)()
	r.S.Vehiculos[v.ID] = *v
	return nil
}

// ─── Ventas y pagos ───────────────────────────────────────────────────────────

type VentaRepo struct {
	S    *Store
	InTx bool
}

var _ repository.VentaRepository = (*VentaRepo)(nil)

func (r *VentaRepo) Create(v *entity.Venta) error {
	defer r.S.enter(r.InTx)()
	r.S.Ventas[v.ID] = *v
	return nil
}

func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	defer r.S.enter(r.InTx)()
	r.S.Detalles = append(r.S.Detalles, *d)
	return nil
}

func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	defer r.S.enter(r.InTx)()
	if v, ok := r.S.Ventas[id]; ok {
		cp := v
		return &cp, nil
	}
	return nil, nil
}

func (r *VentaRepo) GetDetalles(ventaID string) ([]*entity.DetalleVenta, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.DetalleVenta
	for _, d := range r.S.Detalles {
		if d.VentaID == ventaID {
			cp := d
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *VentaRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Venta, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Venta
	for _, v := range r.S.Ventas {
		if v.ClienteID == clienteID {
			cp := v
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return paginate(list, limit, offset), nil
}

func (r *VentaRepo) ListByVehiculoYFecha(vehiculoID string, dia time.Time) ([]*entity.Venta, error) {
	defer r.S.enter(r.InTx)()
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fin := inicio.Add(24 * time.Hour)
	var list []*entity.Venta
	for _, v := range r.S.Ventas {
		if v.VehiculoID == vehiculoID && !v.Fecha.Before(inicio) && v.Fecha.Before(fin) {
			cp := v
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

type PagoRepo struct {
	S    *Store
	InTx bool
}

var _ repository.PagoRepository = (*PagoRepo)(nil)

func (r *PagoRepo) Create(p *entity.Pago) error {
	defer r.S.enter(r.InTx)()
	r.S.Pagos = append(r.S.Pagos, *p)
	return nil
}

func (r *PagoRepo) ListByCliente(clienteID string) ([]*entity.Pago, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Pago
	for _, p := range r.S.Pagos {
		if p.ClienteID == clienteID {
			cp := p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

// ─── Galpones y lotes ─────────────────────────────────────────────────────────

type GalponRepo struct {
	S    *Store
	InTx bool
}

var _ repository.GalponRepository = (*GalponRepo)(nil)

func (r *GalponRepo) Create(g *entity.Galpon) error {
	defer r.S.enter(r.InTx)()
	r.S.Galpones[g.ID] = *g
	return nil
}

func (r *GalponRepo) GetByID(id string) (*entity.Galpon, error) {
	defer r.S.enter(r.InTx)()
	if g, ok := r.S.Galpones[id]; ok {
		cp := g
		return &cp, nil
	}
	return nil, nil
}

func (r *GalponRepo) GetForUpdate(id string) (*entity.Galpon, error) {
	return r.GetByID(id)
}

func (r *GalponRepo) List(limit, offset int) ([]*entity.Galpon, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Galpon
	for _, g := range r.S.Galpones {
		cp := g
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return paginate(list, limit, offset), nil
}

func (r *GalponRepo) Update(g *entity.Galpon) error {
	defer r.S.enter(r.InTx)()
	r.S.Galpones[g.ID] = *g
	return nil
}

type LoteRepo struct {
	S    *Store
	InTx bool
}

var _ repository.LoteRepository = (*LoteRepo)(nil)

func (r *LoteRepo) Create(l *entity.Lote) error {
	defer r.S.enter(r.InTx)()
	r.S.Lotes[l.ID] = *l
	return nil
}

func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	defer r.S.enter(r.InTx)()
	if l, ok := r.S.Lotes[id]; ok {
		cp := l
		return &cp, nil
	}
	return nil, nil
}

func (r *LoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	return r.GetByID(id)
}

func (r *LoteRepo) GetActivoByGalpon(galponID string) (*entity.Lote, error) {
	defer r.S.enter(r.InTx)()
	for _, l := range r.S.Lotes {
		if l.GalponID == galponID && l.Estado == entity.LoteActivo {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *LoteRepo) Update(l *entity.Lote) error {
	defer r.S.enter(r.InTx)()
	r.S.Lotes[l.ID] = *l
	return nil
}

func (r *LoteRepo) ListByGalpon(galponID string) ([]*entity.Lote, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.Lote
	for _, l := range r.S.Lotes {
		if l.GalponID == galponID {
			cp := l
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaInicio.Before(list[j].FechaInicio) })
	return list, nil
}

func (r *LoteRepo) CreateEventoMortalidad(e *entity.EventoMortalidad) error {
	defer r.S.enter(r.InTx)()
	r.S.Eventos = append(r.S.Eventos, *e)
	return nil
}

func (r *LoteRepo) ListEventosByLote(loteID string) ([]*entity.EventoMortalidad, error) {
	defer r.S.enter(r.InTx)()
	var list []*entity.EventoMortalidad
	for _, e := range r.S.Eventos {
		if e.LoteID == loteID {
			cp := e
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.Before(list[j].Fecha) })
	return list, nil
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if limit <= 0 {
		return list
	}
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
