package visitors

import (
	"context"

	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
)

// PassPDFGenerator genera el pase imprimible (con código QR) de una visita.
// La codificación QR en sí es capacidad de la librería de PDF, no del dominio.
type PassPDFGenerator interface {
	GeneratePassPDF(ctx context.Context, v *entity.Visitor, hostName string) ([]byte, error)
}
