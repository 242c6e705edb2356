// Package export renders catalog reports as Excel workbooks.
package export

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/unirepo/core/material"
)

const (
	materialsSheet = "Materials"
	summarySheet   = "Summary"
)

var materialHeaders = []string{"ID", "Title", "Author", "Type", "Year", "Keywords", "Downloads", "Uploaded By", "Created At"}

// MaterialsWorkbook writes one row per material on the Materials sheet and the download totals per
// type on the Summary sheet.
func MaterialsWorkbook(materials []material.Material) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(materialsSheet)
	if err != nil {
		return nil, errors.Wrap(err, "creating materials sheet")
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "deleting default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	if err = writeRow(f, materialsSheet, 1, toCells(materialHeaders)); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(materialHeaders))
	if err = f.SetCellStyle(materialsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "styling header")
	}
	_ = f.SetColWidth(materialsSheet, "B", "B", 50)
	_ = f.SetColWidth(materialsSheet, "C", "C", 28)
	_ = f.SetColWidth(materialsSheet, "F", "F", 40)

	type typeTotal struct {
		count, downloads int
	}
	totals := make(map[string]*typeTotal, len(material.AllTypes))
	for _, typ := range material.AllTypes {
		totals[typ] = &typeTotal{}
	}

	for i, m := range materials {
		createdAt := ""
		if !m.CreatedAt.IsZero() {
			createdAt = m.CreatedAt.Format("2006-01-02")
		}
		row := []interface{}{
			m.ID, m.Title, m.Author, m.Type, m.Year, strings.Join(m.Keywords, ", "), m.Downloads, m.UploadedBy, createdAt,
		}
		if err = writeRow(f, materialsSheet, i+2, row); err != nil {
			return nil, err
		}
		if t, ok := totals[m.Type]; ok {
			t.count++
			t.downloads += m.Downloads
		}
	}

	if _, err = f.NewSheet(summarySheet); err != nil {
		return nil, errors.Wrap(err, "creating summary sheet")
	}
	if err = writeRow(f, summarySheet, 1, toCells([]string{"Type", "Materials", "Downloads"})); err != nil {
		return nil, err
	}
	if err = f.SetCellStyle(summarySheet, "A1", "C1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "styling header")
	}
	for i, typ := range material.AllTypes {
		if err = writeRow(f, summarySheet, i+2, []interface{}{typ, totals[typ].count, totals[typ].downloads}); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err = f.Write(buf); err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return buf, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return errors.Wrap(err, "naming cell")
		}
		if err = f.SetCellValue(sheet, cell, v); err != nil {
			return errors.Wrapf(err, "writing %s!%s", sheet, cell)
		}
	}
	return nil
}

func toCells(ss []string) []interface{} {
	cells := make([]interface{}, len(ss))
	for i, s := range ss {
		cells[i] = s
	}
	return cells
}
