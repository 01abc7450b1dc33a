// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheet describes how a row set is drawn onto a worksheet.
type sheet struct {
	name    string
	title   string
	headers []string

	defaultWidth float64
	widths       map[string]float64
	headerHeight float64
}

var flatSheet = sheet{
	name:         "Reports",
	title:        "Customs violation reports",
	headers:      FlatHeaders,
	defaultWidth: 20,
	widths:       map[string]float64{"A": 5, "C": 15, "D": 15, "AJ": 35},
	headerHeight: 45,
}

var groupedSheet = sheet{
	name:         "Reports Export",
	title:        "Customs violations by offender",
	headers:      GroupedHeaders,
	defaultWidth: 18,
	widths:       map[string]float64{"A": 6, "C": 30, "G": 35},
	headerHeight: 45,
}

const (
	fontFamily  = "Times New Roman"
	stripeColor = "EAEAEA"
	titleRow    = 1
	headerRow   = 2
	firstRow    = 3
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

/*
render writes rows under a title and a header row and returns the .xlsx bytes.

Description: The header is bold white on a blue gradient, data cells are
bordered and wrapped, the header row carries an autofilter and the panes are
frozen below it. A row is filled grey when shaded holds true at its index;
shaded may be nil.
*/
func render(layout sheet, rows [][]any, shaded []bool) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	name := layout.name
	if err := workbook.SetSheetName("Sheet1", name); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	styles, err := newStyles(workbook)
	if err != nil {
		return nil, err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(layout.headers))
	if err != nil {
		return nil, fmt.Errorf("export: column name: %w", err)
	}
	lastRow := firstRow + len(rows) - 1
	if len(rows) == 0 {
		lastRow = headerRow
	}

	// Title
	if err := workbook.SetCellValue(name, "A1", layout.title); err != nil {
		return nil, err
	}
	if err := workbook.MergeCell(name, "A1", cell(lastColumn, titleRow)); err != nil {
		return nil, err
	}
	if err := workbook.SetCellStyle(name, "A1", cell(lastColumn, titleRow), styles.title); err != nil {
		return nil, err
	}
	if err := workbook.SetRowHeight(name, titleRow, 28); err != nil {
		return nil, err
	}

	// Header
	headers := make([]any, len(layout.headers))
	for i, header := range layout.headers {
		headers[i] = header
	}
	if err := workbook.SetSheetRow(name, cell("A", headerRow), &headers); err != nil {
		return nil, err
	}
	if err := workbook.SetCellStyle(name, cell("A", headerRow), cell(lastColumn, headerRow), styles.header); err != nil {
		return nil, err
	}
	if err := workbook.SetRowHeight(name, headerRow, layout.headerHeight); err != nil {
		return nil, err
	}

	// Data
	for i, row := range rows {
		number := firstRow + i
		if err := workbook.SetSheetRow(name, cell("A", number), &row); err != nil {
			return nil, fmt.Errorf("export: write row %d: %w", number, err)
		}

		style := styles.plain
		if i < len(shaded) && shaded[i] {
			style = styles.shaded
		}
		if err := workbook.SetCellStyle(name, cell("A", number), cell(lastColumn, number), style); err != nil {
			return nil, err
		}
	}

	// Columns
	if err := workbook.SetColWidth(name, "A", lastColumn, layout.defaultWidth); err != nil {
		return nil, err
	}
	for column, width := range layout.widths {
		if err := workbook.SetColWidth(name, column, column, width); err != nil {
			return nil, err
		}
	}

	if err := workbook.AutoFilter(name, cell("A", headerRow)+":"+cell(lastColumn, lastRow), nil); err != nil {
		return nil, fmt.Errorf("export: autofilter: %w", err)
	}
	if err := workbook.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: cell("A", firstRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("export: freeze panes: %w", err)
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

type styleSet struct {
	title  int
	header int
	plain  int
	shaded int
}

func newStyles(workbook *excelize.File) (styleSet, error) {
	var (
		set styleSet
		err error
	)

	set.title, err = workbook.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return set, fmt.Errorf("export: title style: %w", err)
	}

	set.header, err = workbook.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Family: fontFamily, Size: 12},
		Fill:      excelize.Fill{Type: "gradient", Color: []string{"0072B2", "0094D8"}, Shading: 0},
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return set, fmt.Errorf("export: header style: %w", err)
	}

	data := func(color string) (int, error) {
		return workbook.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: fontFamily, Size: 12},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		})
	}
	if set.plain, err = data("FFFFFF"); err != nil {
		return set, fmt.Errorf("export: row style: %w", err)
	}
	if set.shaded, err = data(stripeColor); err != nil {
		return set, fmt.Errorf("export: row style: %w", err)
	}

	return set, nil
}

func cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}
