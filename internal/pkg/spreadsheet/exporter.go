// Package spreadsheet builds simple tabular xlsx workbooks on top of excelize.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the produced workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// Column describes one column of a sheet
type Column struct {
	Header string
	// Width in excel character units; zero keeps the default width
	Width float64
}

// Sheet is a header row followed by data rows
type Sheet struct {
	name    string
	columns []Column
	rows    [][]interface{}
	filter  bool
}

// AddRow appends a data row. Values are written in column order.
func (s *Sheet) AddRow(values ...interface{}) *Sheet {
	s.rows = append(s.rows, values)
	return s
}

// WithFilter turns on an autofilter over the header row
func (s *Sheet) WithFilter() *Sheet {
	s.filter = true
	return s
}

// Exporter collects sheets and renders them into a workbook
type Exporter struct {
	sheets []*Sheet
}

// NewExporter creates an empty exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// AddSheet starts a new sheet with the given columns
func (e *Exporter) AddSheet(name string, columns ...Column) *Sheet {
	s := &Sheet{name: name, columns: columns}
	e.sheets = append(e.sheets, s)
	return s
}

// Build renders every sheet into a new excelize file. The caller owns the
// returned file and must Close it.
func (e *Exporter) Build() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, errors.New("spreadsheet: no sheets to export")
	}

	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("spreadsheet: header style: %w", err)
	}

	for i, sheet := range e.sheets {
		if i == 0 {
			f.SetSheetName(defaultSheet, sheet.name)
		} else {
			f.NewSheet(sheet.name)
		}

		if err := renderSheet(f, sheet, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("spreadsheet: sheet %q: %w", sheet.name, err)
		}
	}

	return f, nil
}

func renderSheet(f *excelize.File, sheet *Sheet, headerStyle int) error {
	if len(sheet.columns) == 0 {
		return errors.New("no columns")
	}

	header := make([]interface{}, len(sheet.columns))
	for i, col := range sheet.columns {
		header[i] = col.Header
	}
	if err := f.SetSheetRow(sheet.name, "A1", &header); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheet.columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, col := range sheet.columns {
		if col.Width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.name, name, name, col.Width); err != nil {
			return err
		}
	}

	for r, row := range sheet.rows {
		if len(row) > len(sheet.columns) {
			return fmt.Errorf("row %d has %d values for %d columns", r+1, len(row), len(sheet.columns))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet.name, cell, &values); err != nil {
			return err
		}
	}

	if sheet.filter {
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(sheet.rows)+1)
		if err := f.AutoFilter(sheet.name, ref, nil); err != nil {
			return err
		}
	}

	return nil
}

// ToBytes renders the workbook into memory
func (e *Exporter) ToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.ToWriter(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWriter renders the workbook straight to w
func (e *Exporter) ToWriter(w io.Writer) error {
	f, err := e.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}
