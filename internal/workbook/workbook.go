// Package workbook renders a presentation model into a three-sheet xlsx
// file (checklist, summary, instructions). It depends only on the
// present.Model contract.
package workbook

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/present"
)

const (
	headerColor   = "FF1F3864"
	whiteColor    = "FFFFFFFF"
	highFill      = "FFF4CCCC"
	mediumFill    = "FFFFF2CC"
	lowFill       = "FFD9EAD3"
	pendingFill   = "FFFCE4D6"
	receivedFill  = "FFDDEBF7"
	reviewedFill  = "FFE2EFDA"
	missingFill   = "FFF4CCCC"
	nameColWidth  = 55
	minColWidth   = 14
	wideColWidth  = 30
	defaultFontSz = 11
)

var priorityFills = map[model.Priority]string{
	model.PriorityHigh:   highFill,
	model.PriorityMedium: mediumFill,
	model.PriorityLow:    lowFill,
}

// statusFills follows the model.Statuses() ordering.
var statusFills = []string{pendingFill, receivedFill, reviewedFill, missingFill}

// Write renders the model into an xlsx workbook at path.
func Write(m *present.Model, path string) error {
	file := xlsx.NewFile()

	if err := writeChecklist(file, m); err != nil {
		return err
	}
	if err := writeSummary(file, m); err != nil {
		return err
	}
	if err := writeInstructions(file, m); err != nil {
		return err
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "workbook: save %s", path)
	}
	return nil
}

func writeChecklist(file *xlsx.File, m *present.Model) error {
	sheet, err := file.AddSheet(m.ChecklistSheet)
	if err != nil {
		return eris.Wrap(err, "workbook: add checklist sheet")
	}

	header := sheet.AddRow()
	for _, h := range m.Headers {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle())
	}

	for _, r := range m.Rows {
		row := sheet.AddRow()
		values := []string{
			r.Category, r.Name, r.Required, string(r.Priority),
			r.ReceivedDate, r.Status, r.Responsible, r.Comments,
		}
		for col, v := range values {
			cell := row.AddCell()
			cell.SetString(v)

			style := bodyStyle()
			style.Alignment.WrapText = col == 1
			switch col {
			case 3:
				if fill, ok := priorityFills[r.Priority]; ok {
					setFill(style, fill)
				}
				if err := setDropList(cell, m.PriorityOptions); err != nil {
					return err
				}
			case 5:
				setFill(style, pendingFill)
				if err := setDropList(cell, m.StatusOptions); err != nil {
					return err
				}
			}
			cell.SetStyle(style)
		}
	}

	sheet.SetColWidth(0, 7, minColWidth)
	sheet.SetColWidth(1, 1, nameColWidth)
	return nil
}

func writeSummary(file *xlsx.File, m *present.Model) error {
	sheet, err := file.AddSheet(m.SummarySheet)
	if err != nil {
		return eris.Wrap(err, "workbook: add summary sheet")
	}

	title := sheet.AddRow().AddCell()
	title.SetString(m.Summary.Title)
	title.SetStyle(titleStyle())
	title.Merge(3, 0)

	sheet.AddRow()
	for _, meta := range m.Summary.Meta {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(meta.Label)
		label.SetStyle(boldStyle())
		row.AddCell().SetString(meta.Value)
	}

	sheet.AddRow()
	writeCountTable(sheet, m.Summary.ByCategoryTitle, m.Summary.CategoryHeader, m.Summary.CountHeader, m.Summary.ByCategory)
	sheet.AddRow()
	writeCountTable(sheet, m.Summary.ByPriorityTitle, m.Summary.PriorityHeader, m.Summary.CountHeader, m.Summary.ByPriority)

	sheet.SetColWidth(0, 0, wideColWidth)
	sheet.SetColWidth(1, 1, 18)
	return nil
}

func writeCountTable(sheet *xlsx.Sheet, title, labelHeader, countHeader string, rows []present.CountRow) {
	titleCell := sheet.AddRow().AddCell()
	titleCell.SetString(title)
	titleCell.SetStyle(subtitleStyle())

	header := sheet.AddRow()
	for _, h := range []string{labelHeader, countHeader} {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle())
	}

	for _, r := range rows {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(r.Label)
		style := bodyStyle()
		if fill, ok := priorityFills[r.Priority]; ok {
			setFill(style, fill)
		}
		label.SetStyle(style)

		count := row.AddCell()
		count.SetInt(r.Count)
		count.SetStyle(bodyStyle())
	}
}

func writeInstructions(file *xlsx.File, m *present.Model) error {
	sheet, err := file.AddSheet(m.InstructionsSheet)
	if err != nil {
		return eris.Wrap(err, "workbook: add instructions sheet")
	}
	ins := m.Instructions

	title := sheet.AddRow().AddCell()
	title.SetString(ins.Title)
	title.SetStyle(titleStyle())
	title.Merge(4, 0)

	sheet.AddRow()
	subtitle(sheet, ins.HowToUseTitle)
	for _, item := range ins.HowToUseItems {
		sheet.AddRow().AddCell().SetString(item)
	}

	sheet.AddRow()
	subtitle(sheet, ins.StatusDefsTitle)
	header := sheet.AddRow()
	for _, h := range []string{ins.StatusHeader, ins.DefinitionHeader} {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle())
	}
	for i, def := range ins.StatusDefs {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(def.Label)
		style := boldStyle()
		if i < len(statusFills) {
			setFill(style, statusFills[i])
		}
		label.SetStyle(style)
		row.AddCell().SetString(def.Value)
	}

	sheet.AddRow()
	subtitle(sheet, ins.TimelineTitle)
	header = sheet.AddRow()
	for _, h := range []string{ins.PhaseHeader, ins.ActivitiesHeader} {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle())
	}
	for _, item := range ins.Timeline {
		row := sheet.AddRow()
		phase := row.AddCell()
		phase.SetString(item.Label)
		phase.SetStyle(boldStyle())
		row.AddCell().SetString(item.Value)
	}

	sheet.AddRow()
	subtitle(sheet, ins.ContactsTitle)
	header = sheet.AddRow()
	for _, h := range ins.ContactsHeaders {
		cell := header.AddCell()
		cell.SetString(h)
		cell.SetStyle(headerStyle())
	}
	for _, role := range ins.ContactsRoles {
		row := sheet.AddRow()
		row.AddCell().SetString(role)
		for i := 1; i < len(ins.ContactsHeaders); i++ {
			row.AddCell()
		}
	}

	sheet.SetColWidth(0, 0, 28)
	sheet.SetColWidth(1, 1, 60)
	return nil
}

func subtitle(sheet *xlsx.Sheet, text string) {
	cell := sheet.AddRow().AddCell()
	cell.SetString(text)
	cell.SetStyle(subtitleStyle())
}

func setDropList(cell *xlsx.Cell, options []string) error {
	dv := xlsx.NewDataValidation(0, 0, 0, 0, true)
	if err := dv.SetDropList(options); err != nil {
		return eris.Wrap(err, "workbook: set drop list")
	}
	cell.SetDataValidation(dv)
	return nil
}

func setFill(style *xlsx.Style, color string) {
	style.Fill = *xlsx.NewFill("solid", color, color)
	style.ApplyFill = true
}

func headerStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	font := xlsx.NewFont(defaultFontSz, "Calibri")
	font.Bold = true
	font.Color = whiteColor
	style.Font = *font
	style.ApplyFont = true
	setFill(style, headerColor)
	style.Border = *xlsx.NewBorder("thin", "thin", "thin", "thin")
	style.ApplyBorder = true
	style.Alignment = xlsx.Alignment{Horizontal: "center", Vertical: "center"}
	style.ApplyAlignment = true
	return style
}

func bodyStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	style.Font = *xlsx.NewFont(defaultFontSz, "Calibri")
	style.ApplyFont = true
	style.Border = *xlsx.NewBorder("thin", "thin", "thin", "thin")
	style.ApplyBorder = true
	style.Alignment = xlsx.Alignment{Vertical: "center"}
	style.ApplyAlignment = true
	return style
}

func boldStyle() *xlsx.Style {
	style := bodyStyle()
	style.Font.Bold = true
	return style
}

func titleStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	font := xlsx.NewFont(14, "Calibri")
	font.Bold = true
	style.Font = *font
	style.ApplyFont = true
	return style
}

func subtitleStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	font := xlsx.NewFont(12, "Calibri")
	font.Bold = true
	style.Font = *font
	style.ApplyFont = true
	return style
}
