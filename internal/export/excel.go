// Package export renders report rows as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hrsight/employees-api/internal/domain"
)

const profileSheet = "Employee Profiles"

var profileHeaders = []string{
	"Emp No", "First Name", "Last Name", "Title", "Salary",
	"Dept No", "Department", "Manager First Name", "Manager Last Name",
	"Effective Date", "End Date",
}

// WriteProfileWorkbook writes one sheet with a header row followed by one
// row per profile slice.
func WriteProfileWorkbook(rows []domain.ProfileRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", profileSheet)

	for col, header := range profileHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("computing header cell: %w", err)
		}
		if err := f.SetCellValue(profileSheet, cell, header); err != nil {
			return fmt.Errorf("writing header cell: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmpNo, row.EmployeeFirstName, row.EmployeeLastName, row.Title, row.Salary,
			row.DeptNo, row.DeptName, row.ManagerFirstName, row.ManagerLastName,
			row.EffectiveDate, row.EndDate,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("computing cell for row %d: %w", i+1, err)
			}
			if err := f.SetCellValue(profileSheet, cell, value); err != nil {
				return fmt.Errorf("writing cell for row %d: %w", i+1, err)
			}
		}
	}

	return f.Write(w)
}
