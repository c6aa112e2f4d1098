package repository

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// BankDepositRepository depósitos bancarios más la gestión de comprobantes.
type BankDepositRepository interface {
	Collection[entity.BankDeposit]
	// UploadReceipt sube el archivo y devuelve la URL almacenada.
	UploadReceipt(ctx context.Context, scope Scope, filename string, content io.Reader) (string, error)
	// DownloadURL pide una URL firmada de duración limitada para el comprobante.
	DownloadURL(ctx context.Context, scope Scope, id string, ttl time.Duration) (string, error)
}
