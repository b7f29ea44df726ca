// Package pdf implementa la representación gráfica del recibo de pago.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  N° Recibo + Fecha de pago   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Método / Notas                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator.
var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa el recibo de pago usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment *entity.Payment,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(payment, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailRows(payment)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(payment))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: Razón social + NIT (izq) y N° recibo + fecha de pago (der).
func headerRow(payment *entity.Payment, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("N° "+payment.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha de pago: "+payment.PaymentDate, props.Text{
				Size: 9, Align: align.Right, Top: 12,
			}),
		),
	)
}

func detailRows(payment *entity.Payment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(3).Add(text.New("Método de pago", props.Text{Style: fontstyle.Bold, Size: 9})),
			col.New(9).Add(text.New(payment.Method, props.Text{Size: 9})),
		),
	}
	if payment.Notes != "" {
		rows = append(rows, row.New(7).Add(
			col.New(3).Add(text.New("Notas", props.Text{Style: fontstyle.Bold, Size: 9})),
			col.New(9).Add(text.New(payment.Notes, props.Text{Size: 9})),
		))
	}
	return rows
}

func totalRow(payment *entity.Payment) core.Row {
	return row.New(12).Add(
		col.New(7),
		col.New(5).Add(
			text.New("TOTAL PAGADO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("$ "+payment.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6, Color: colorPrimary,
			}),
		),
	)
}

func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Documento generado por el sistema de gestión de estibas.", props.Text{
				Size: 7, Color: colorGray,
			}),
		),
	)
}
