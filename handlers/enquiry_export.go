// handlers/enquiry_export.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"p9e.in/salescrm/config"
	"p9e.in/salescrm/models"
)

// ExportEnquiriesToExcel downloads the admin dashboard as an .xlsx sheet.
func ExportEnquiriesToExcel(w http.ResponseWriter, r *http.Request) {
	var enquiries []models.Enquiry
	if err := config.DB.
		Where("account_owner IS NOT NULL").
		Order("id DESC").
		Find(&enquiries).Error; err != nil {
		writeServiceError(w, &models.PersistenceError{Op: "export enquiries", Err: err})
		return
	}

	excelFile, err := createEnquiryWorkbook(enquiries)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("enquiries_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

var exportHeaders = []string{
	"ID", "Owner", "Name", "POC", "Mobile", "City", "Email", "Type",
	"Action", "Start Date", "End Date", "Amount", "Total Value",
	"Invoice No", "PO No", "ACK No", "GST No", "PAN No",
	"Billing Address", "SPOC", "Closure Date", "Remark",
}

func createEnquiryWorkbook(enquiries []models.Enquiry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Enquiries"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Sales Enquiries")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	for rowIdx, e := range enquiries {
		values := []interface{}{
			e.ID, e.AccountOwner, e.Name, e.PocName, e.MobileNumber, e.City,
			e.Email, e.CustomerType, e.ActionType,
			deref(e.StartDate), deref(e.EndDate),
			deref(e.Amount), deref(e.TotalValue),
			e.InvoiceNo, e.PoNo, e.AckNo, e.GstNo, e.PanNo,
			e.BillingAddr, e.Spoc, deref(e.ClosureDate), e.Remark,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.DeleteSheet("Sheet1")

	return f, nil
}
