package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{"Salesforce ID", "First name", "Last name", "Title", "Email Address", "Phone Number"}

// ExportContacts streams the full listing as an Excel workbook. Read-only:
// the export never touches the store beyond the listing query.
func (h *Handler) ExportContacts(c *gin.Context) {
	contacts, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list contacts failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for row, contact := range contacts {
		values := []string{
			contact.SFID,
			contact.FirstName,
			contact.LastName,
			contact.Title,
			contact.Email,
			contact.Phone,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="contacts.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.Log.Error("write workbook failed", zap.Error(err))
	}
}
