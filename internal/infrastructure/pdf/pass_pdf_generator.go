// Package pdf implementa la generación del pase imprimible del visitante.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  VISITOR PASS            │  Código del pase   │
//	│  ───────────────────────────────────────────  │
//	│  Nombre del visitante + propósito             │
//	│  Fecha / hora agendada / persona a visitar    │
//	│  ───────────────────────────────────────────  │
//	│  QR con el código       │  Instrucciones      │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Visitantes-api/internal/application/visitors"
	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 68, Blue: 115}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ visitors.PassPDFGenerator = (*MarotoPassGenerator)(nil)

// MarotoPassGenerator implementa visitors.PassPDFGenerator usando Maroto v2.
type MarotoPassGenerator struct{}

// NewMarotoPassGenerator construye el generador.
func NewMarotoPassGenerator() *MarotoPassGenerator { return &MarotoPassGenerator{} }

// GeneratePassPDF genera el pase y devuelve sus bytes. El QR codifica
// únicamente el código del pase: es lo que el guardia escanea en portería.
func (g *MarotoPassGenerator) GeneratePassPDF(_ context.Context, v *entity.Visitor, hostName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Visitor Pass "+v.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailRows(v, hostName)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(v))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar pase: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y código del pase (der).
func headerRow(v *entity.Visitor) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("VISITOR PASS", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(v.Code, props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 3, Color: colorPrimary,
			}),
		),
	)
}

func detailRows(v *entity.Visitor, hostName string) []core.Row {
	pairs := [][2]string{
		{"Visitante", v.FullName},
		{"Propósito", v.Purpose},
		{"Visita a", v.PersonToVisit},
		{"Fecha", v.VisitDate.Format("02/01/2006")},
		{"Hora agendada", v.TimeIn},
	}
	if hostName != "" {
		pairs = append(pairs, [2]string{"Registrado por", hostName})
	}

	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(p[0], props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(8).Add(text.New(p[1], props.Text{Size: 9, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

// qrRow: código escaneable + instrucciones para portería.
func qrRow(v *entity.Visitor) core.Row {
	return row.New(48).Add(
		col.New(5).Add(code.NewQr(v.Code, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(7).Add(
			text.New("Presente este código en portería al llegar y al salir.", props.Text{
				Size: 9, Top: 8, Left: 3, Color: colorGray,
			}),
			text.New("El pase es válido una única vez:\nentrada y salida.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 24, Left: 3, Color: colorPrimary,
			}),
		),
	)
}
