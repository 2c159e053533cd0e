package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportType identifies the kind of bulk import performed
type ImportType string

const (
	ImportCSVCourses  ImportType = "csv_courses"
	ImportCSVMappings ImportType = "csv_mappings"
	ImportPDFCatalog  ImportType = "pdf_catalog"
)

// ImportHistory tracks CSV/PDF bulk imports. ErrorLog holds the per-row
// failures as a JSON array so the admin UI can render them without parsing
// free text.
type ImportHistory struct {
	gorm.Model
	BatchID          string         `gorm:"size:36;index" json:"batchId"`
	ImportType       ImportType     `gorm:"type:varchar(20);not null" json:"importType"`
	FileName         string         `gorm:"size:500" json:"fileName"`
	RecordsProcessed int            `gorm:"default:0" json:"recordsProcessed"`
	RecordsSuccess   int            `gorm:"default:0" json:"recordsSuccess"`
	RecordsError     int            `gorm:"default:0" json:"recordsError"`
	ErrorLog         datatypes.JSON `json:"errorLog"`
	ImportedBy       uint           `gorm:"not null" json:"importedBy"`
}
