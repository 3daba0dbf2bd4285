package service

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a quote document using maroto/v2 and returns
// the raw PDF bytes.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteItemsTable(m, data)
	addQuoteNotes(m, data)
	addQuoteTotals(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company name, document title, client name and
// the city/date line.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Cliente: %s", data.ClientName), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(data.DateLine, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteItemsTable adds the product table with image thumbnails.
func addQuoteItemsTable(m core.Maroto, data *QuoteExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("Imagem", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Produto", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Valor Unitário", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qtd", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	placeholderText := props.Text{
		Size:  7,
		Align: align.Center,
		Top:   8,
		Color: &props.Color{Red: 150, Green: 150, Blue: 150},
	}

	for i := range data.Rows {
		r := &data.Rows[i]

		bodyText := props.Text{Size: 8, Align: align.Center, Top: 7}
		bodyTextLeft := props.Text{Size: 8, Align: align.Left, Top: 7}
		bodyTextRight := props.Text{Size: 8, Align: align.Right, Top: 7}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		var colImage core.Col
		if r.HasImage() {
			colImage = image.NewFromBytesCol(2, r.Image, r.ImageExt, props.Rect{
				Center:  true,
				Percent: 85,
			})
		} else {
			colImage = col.New(2).Add(text.New(NoImagePlaceholder, placeholderText))
		}
		colDesc := col.New(4).Add(text.New(r.Description, bodyTextLeft))
		colUnit := col.New(2).Add(text.New(r.UnitPrice, bodyTextRight))
		colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), bodyText))
		colTotal := col.New(3).Add(text.New(r.LineTotal, bodyTextRight))

		if cellStyle != nil {
			colImage = colImage.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(20).Add(colImage, colDesc, colUnit, colQty, colTotal),
		)
	}

	m.AddRows(row.New(3))
}

// addQuoteNotes adds the validity and monthly service lines.
func addQuoteNotes(m core.Maroto, data *QuoteExportData) {
	noteStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("Observações", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New(data.ValidityNote, noteStyle))),
	)
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New(data.MonthlyServiceNote, noteStyle))),
	)

	m.AddRows(row.New(3))
}

// addQuoteTotals adds right-aligned total rows.
func addQuoteTotals(m core.Maroto, data *QuoteExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Total dos Produtos", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(data.ProductsTotal, valueStyle)).WithStyle(summaryCell),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Mão de Obra", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(data.LaborCost, valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("TOTAL GERAL", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(data.GrandTotal, grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(6))
}

// addQuoteFooter adds the centered company contact block.
func addQuoteFooter(m core.Maroto, data *QuoteExportData) {
	footerStyle := props.Text{
		Size:  7,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	for _, line := range data.FooterLines {
		if line == "" {
			continue
		}
		m.AddRows(
			row.New(4).Add(col.New(12).Add(text.New(line, footerStyle))),
		)
	}
}
