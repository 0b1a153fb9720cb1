package galpones

import (
	"context"

	"github.com/faguirre1/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios del ciclo de lotes. Las transiciones de estado (alta,
// mortalidad, cierre) se deciden con la fila bloqueada.
type TxRunner interface {
	RunLote(ctx context.Context, fn func(
		galponRepo repository.GalponRepository,
		loteRepo repository.LoteRepository,
	) error) error
}
