package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrsight/employees-api/internal/domain"
)

func TestWriteProfileWorkbook(t *testing.T) {
	rows := []domain.ProfileRow{
		{
			EmpNo: 10001, EmployeeFirstName: "Georgi", EmployeeLastName: "Facello",
			Title: "Senior Engineer", Salary: 66074, DeptNo: "d005", DeptName: "Development",
			ManagerFirstName: "Leon", ManagerLastName: "DasSarma",
			EffectiveDate: "2020-06-26", EndDate: "9999-01-01",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProfileWorkbook(rows, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Employee Profiles", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Emp No", header)

	name, err := f.GetCellValue("Employee Profiles", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Georgi", name)

	// the sentinel must survive the round trip verbatim
	end, err := f.GetCellValue("Employee Profiles", "K2")
	require.NoError(t, err)
	assert.Equal(t, "9999-01-01", end)
}

func TestWriteProfileWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfileWorkbook(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employee Profiles")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
