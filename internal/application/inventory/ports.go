package inventory

import (
	"context"

	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Las lecturas del guardia de duplicados y de la compuerta ven lo mismo que la inserción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		detailRepo repository.DetailRepository,
	) error) error
}

// documentLockKey es la clave de bloqueo de las líneas de un documento.
func documentLockKey(documentID string) string {
	return "khohang:document:" + documentID
}
