// File: internal/sheets/service.go
package sheets

import (
	"fmt"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
)

// Service provides high-level operations for Google Sheets exports
type Service struct {
	client *Client
}

// NewService creates a new sheets service
func NewService(client *Client) *Service {
	return &Service{
		client: client,
	}
}

// ExportSales exports sale lines to a Google Sheet and returns the number of
// records written.
func (s *Service) ExportSales(sheetName string, records []*data.SaleExportRecord, exportedBy string) (int, error) {
	_, err := s.client.CreateSheet(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet: %v", err)
	}

	if err := s.client.ClearSheet(sheetName); err != nil {
		return 0, fmt.Errorf("failed to clear sheet: %v", err)
	}

	formattedData := FormatSalesData(records, exportedBy)

	if err := s.client.WriteData(sheetName, "A1", formattedData); err != nil {
		return 0, fmt.Errorf("failed to write data: %v", err)
	}

	if err := s.client.FormatHeader(sheetName, len(formattedData[0])); err != nil {
		return 0, fmt.Errorf("failed to format header: %v", err)
	}

	return len(records), nil
}

// GenerateSheetName generates a sheet name based on the export date range.
func GenerateSheetName(startDate, endDate *time.Time) string {
	now := time.Now()

	switch {
	case startDate != nil && endDate != nil:
		return fmt.Sprintf("Sales_%s_to_%s", startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	case startDate != nil:
		return fmt.Sprintf("Sales_from_%s", startDate.Format("2006-01-02"))
	case endDate != nil:
		return fmt.Sprintf("Sales_until_%s", endDate.Format("2006-01-02"))
	default:
		return fmt.Sprintf("Sales_Export_%s", now.Format("2006-01-02_15-04-05"))
	}
}
