// File: internal/sheets/formatter.go
package sheets

import (
	"fmt"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
)

// FormatSalesData formats sale lines for Google Sheets export
func FormatSalesData(records []*data.SaleExportRecord, exportedBy string) [][]interface{} {
	header := []interface{}{
		"Sale ID",
		"Date",
		"Time",
		"Seller Email",
		"Seller Name",
		"Product Name",
		"Unit Price",
		"Quantity",
		"Total Amount",
	}

	formattedData := [][]interface{}{header}

	for _, record := range records {
		row := []interface{}{
			record.SaleID,
			record.Date,
			record.Time,
			record.SellerEmail,
			record.SellerName,
			record.ProductName,
			fmt.Sprintf("%.2f", record.UnitPrice),
			record.Quantity,
			fmt.Sprintf("%.2f", record.TotalAmount),
		}
		formattedData = append(formattedData, row)
	}

	// Summary section
	if len(records) > 0 {
		totalAmount := 0.0
		totalQuantity := int64(0)
		for _, record := range records {
			totalAmount += record.TotalAmount
			totalQuantity += record.Quantity
		}

		formattedData = append(formattedData, []interface{}{})
		formattedData = append(formattedData, []interface{}{"Summary", "", "", "", "", "", "", "", ""})
		formattedData = append(formattedData, []interface{}{"Total Lines:", len(records), "", "", "", "", "", "", ""})
		formattedData = append(formattedData, []interface{}{"Total Items Sold:", totalQuantity, "", "", "", "", "", "", ""})
		formattedData = append(formattedData, []interface{}{"Total Revenue:", fmt.Sprintf("%.2f", totalAmount), "", "", "", "", "", "", ""})
	}

	formattedData = append(formattedData, []interface{}{})
	formattedData = append(formattedData, []interface{}{"Export Information", "", "", "", "", "", "", "", ""})
	formattedData = append(formattedData, []interface{}{"Exported By:", exportedBy, "", "", "", "", "", "", ""})
	formattedData = append(formattedData, []interface{}{"Export Date:", time.Now().Format("2006-01-02 15:04:05"), "", "", "", "", "", "", ""})

	return formattedData
}
