package report

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorBlack  = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorMuted  = &props.Color{Red: 75, Green: 85, Blue: 99}
	colorBorder = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// RenderPDF produces the report as an A4 PDF.
func RenderPDF(r ServiceReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(buildHeader()...)
	m.AddRows(row.New(4))
	m.AddRows(buildMeta(r)...)
	m.AddRows(row.New(6))
	m.AddRows(buildTable("Service Details", [][2]string{
		{"Product Name:", r.ProductName},
		{"Issue Reported:", r.Issue},
		{"Technician Notes:", r.TechnicianNotes},
	})...)
	m.AddRows(row.New(6))
	m.AddRows(buildTable("Customer Feedback", [][2]string{
		{"Rating:", r.Rating},
		{"Remarks:", r.Remarks},
	})...)
	m.AddRows(row.New(20))
	m.AddRows(buildSignatures())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func buildHeader() []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(CompanyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: colorBlack,
		}))),
		row.New(6).Add(col.New(12).Add(text.New(CompanyAddress, props.Text{
			Size:  8,
			Align: align.Center,
			Color: colorMuted,
		}))),
		row.New(2).Add(col.New(12)).WithStyle(&props.Cell{BorderType: border.Bottom, BorderColor: colorBorder}),
		row.New(10).Add(col.New(12).Add(text.New(Title, props.Text{
			Size:  13,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
		}))).WithStyle(&props.Cell{BorderType: border.Bottom, BorderColor: colorBorder}),
	}
}

func buildMeta(r ServiceReport) []core.Row {
	label := props.Text{Size: 9, Style: fontstyle.Bold}
	value := props.Text{Size: 9}
	return []core.Row{
		row.New(6).Add(
			col.New(2).Add(text.New("Report ID:", label)), col.New(4).Add(text.New(r.ReportID, value)),
			col.New(2).Add(text.New("Date:", label)), col.New(4).Add(text.New(r.Date, value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Customer:", label)), col.New(4).Add(text.New(r.CustomerName, value)),
			col.New(2).Add(text.New("Technician:", label)), col.New(4).Add(text.New(r.TechnicianName, value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Address:", label)), col.New(10).Add(text.New(r.Address, value)),
		).WithStyle(&props.Cell{BorderType: border.Bottom, BorderColor: colorBorder}),
	}
}

func buildTable(title string, lines [][2]string) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold}))),
	}
	cell := &props.Cell{BorderType: border.Full, BorderColor: colorBorder}
	for _, line := range lines {
		rows = append(rows, row.New(9).Add(
			col.New(4).Add(text.New(line[0], props.Text{Size: 9, Style: fontstyle.Bold, Top: 2})),
			col.New(8).Add(text.New(line[1], props.Text{Size: 9, Top: 2})),
		).WithStyle(cell))
	}
	return rows
}

func buildSignatures() core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("Technician Signature", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2})),
		col.New(6).Add(text.New("Customer Signature & Stamp", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2, Align: align.Right})),
	).WithStyle(&props.Cell{BorderType: border.Top, BorderColor: colorBorder})
}
