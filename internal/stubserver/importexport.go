package stubserver

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"orgconsole/internal/models"
)

const maxImportBytes = 10 << 20

func employeeCode(id int) string {
	return fmt.Sprintf("EMP%04d", id)
}

// importColumns is the expected order of the first sheet's columns.
var importColumns = []string{
	"first_name", "last_name", "email", "phone",
	"site_id", "department_id", "designation_id",
	"joining_date", "employment_type", "current_address",
}

type importRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// importEmployees parses an uploaded Excel workbook or CSV row by row,
// creating what it can and reporting each bad row; one bad row never aborts
// the rest.
func (s *Server) importEmployees(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	if header.Size > maxImportBytes {
		respondMessage(c, http.StatusRequestEntityTooLarge, "file exceeds the 10MB import limit")
		return
	}

	f, err := header.Open()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer f.Close()

	var rows [][]string
	if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		rows, err = reader.ReadAll()
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "file is not a readable CSV")
			return
		}
	} else {
		book, err := excelize.OpenReader(f)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "file is not a readable Excel workbook")
			return
		}
		defer book.Close()

		sheet := book.GetSheetName(0)
		rows, err = book.GetRows(sheet)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "file is not a readable Excel workbook")
			return
		}
	}
	if len(rows) < 2 {
		respondMessage(c, http.StatusBadRequest, "file has no data rows")
		return
	}

	var (
		success int
		errs    []importRowError
	)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header row
		get := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}

		if get(0) == "" || get(1) == "" {
			errs = append(errs, importRowError{Row: rowNum, Error: "first and last name are required"})
			continue
		}
		if !strings.Contains(get(2), "@") {
			errs = append(errs, importRowError{Row: rowNum, Error: "invalid email"})
			continue
		}
		siteID := atoiOrZero(get(4))
		deptID := atoiOrZero(get(5))
		desigID := atoiOrZero(get(6))
		if siteID == 0 || deptID == 0 || desigID == 0 {
			errs = append(errs, importRowError{Row: rowNum, Error: "site, department and designation ids are required"})
			continue
		}

		now := time.Now()
		s.store.mu.Lock()
		emp := models.Employee{
			ID:             s.store.next(),
			OrganizationID: orgID,
			FirstName:      get(0),
			LastName:       get(1),
			Email:          get(2),
			Phone:          get(3),
			SiteID:         siteID,
			DepartmentID:   deptID,
			DesignationID:  desigID,
			RoleID:         1,
			JoiningDate:    get(7),
			EmploymentType: get(8),
			CurrentAddress: get(9),
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		emp.EmployeeCode = employeeCode(emp.ID)
		s.store.employees[emp.ID] = emp
		s.store.mu.Unlock()
		success++
	}

	if errs == nil {
		errs = []importRowError{}
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"totalRows":    len(rows) - 1,
		"successCount": success,
		"errorCount":   len(errs),
		"errors":       errs,
	}})
}

func atoiOrZero(s string) int {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0
	}
	return n
}

// exportEmployees streams the scoped employee list as an Excel workbook or
// a CSV, depending on the format parameter.
func (s *Server) exportEmployees(c *gin.Context) {
	orgID, ok := orgScope(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "excel")

	s.store.mu.RLock()
	items := make([]models.Employee, 0)
	for _, id := range sortedIDs(s.store.employees) {
		emp := s.store.employees[id]
		if emp.OrganizationID == orgID {
			items = append(items, emp)
		}
	}
	s.store.mu.RUnlock()

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="employees.csv"`)
		w := csv.NewWriter(c.Writer)
		_ = w.Write(importColumns)
		for _, emp := range items {
			_ = w.Write([]string{
				emp.FirstName, emp.LastName, emp.Email, emp.Phone,
				fmt.Sprint(emp.SiteID), fmt.Sprint(emp.DepartmentID), fmt.Sprint(emp.DesignationID),
				emp.JoiningDate, emp.EmploymentType, emp.CurrentAddress,
			})
		}
		w.Flush()

	case "excel":
		book := excelize.NewFile()
		defer book.Close()
		sheet := book.GetSheetName(0)
		for col, name := range importColumns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = book.SetCellValue(sheet, cell, name)
		}
		for rowIdx, emp := range items {
			values := []interface{}{
				emp.FirstName, emp.LastName, emp.Email, emp.Phone,
				emp.SiteID, emp.DepartmentID, emp.DesignationID,
				emp.JoiningDate, emp.EmploymentType, emp.CurrentAddress,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				_ = book.SetCellValue(sheet, cell, v)
			}
		}
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
		_ = book.Write(c.Writer)

	default:
		respondMessage(c, http.StatusBadRequest, "unsupported export format")
	}
}
