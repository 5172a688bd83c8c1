package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

const (
	studentsSheet = "Students"
	teachersSheet = "Teachers"
)

var studentHeaders = []string{"ID", "Full Name", "Email", "Phone", "Roll No", "Std", "Stream", "Parents Name", "Parents Number", "Status"}
var teacherHeaders = []string{"ID", "Full Name", "Email", "Phone", "Subject", "Experience (years)", "Qualification", "Teaching Level", "Status"}

// BuildRosterWorkbook renders the student and teacher rosters as an xlsx
// workbook, one sheet per role.
func BuildRosterWorkbook(students []*models.Student, teachers []*models.Teacher) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", studentsSheet)
	if _, err := f.NewSheet(teachersSheet); err != nil {
		return nil, fmt.Errorf("failed to create teachers sheet: %w", err)
	}

	if err := writeHeaderRow(f, studentsSheet, studentHeaders); err != nil {
		return nil, err
	}
	for i, s := range students {
		row := []interface{}{
			s.ID, s.FullName, s.Email, s.PhoneNumber,
			s.RollNo, s.Std, derefOrEmpty(s.Stream),
			s.ParentsName, s.ParentsNumber, string(s.Status),
		}
		if err := writeRow(f, studentsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeHeaderRow(f, teachersSheet, teacherHeaders); err != nil {
		return nil, err
	}
	for i, t := range teachers {
		row := []interface{}{
			t.ID, t.FullName, t.Email, t.PhoneNumber,
			t.SubjectExpertise, t.ExperienceYears, t.HighestQualification,
			t.TeachingLevel, string(t.Status),
		}
		if err := writeRow(f, teachersSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return writeRow(f, sheet, 1, cells)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
