package models

// ReportMetadata identifies the district and reporting period of a workbook.
type ReportMetadata struct {
	// DistrictName is the reporting district.
	DistrictName string `json:"district_name"`
	// YearEnd is the period end as YYYY-MM-DD, the raw text when unparsable, or empty.
	YearEnd string `json:"year_end"`
	// ContactName is the district contact person.
	ContactName string `json:"contact_name"`
	// ContactEmail is the district contact address.
	ContactEmail string `json:"contact_email"`
}

// Workbook is the extraction result for a single salary report file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Metadata is parsed from the key/value sheet.
	Metadata ReportMetadata `json:"metadata"`
	// Salaries holds one record per employee row.
	Salaries []SalaryRecord `json:"salaries"`
}

// Contact returns the contact row for the workbook.
func (w Workbook) Contact() ContactRecord {
	return ContactRecord{
		DistrictName: w.Metadata.DistrictName,
		YearEnd:      w.Metadata.YearEnd,
		ContactName:  w.Metadata.ContactName,
		ContactEmail: w.Metadata.ContactEmail,
		SourceFile:   w.BookName,
	}
}

// ContactRecord is the contact_info row of a workbook.
type ContactRecord struct {
	DistrictName string `json:"district_name"`
	YearEnd      string `json:"year_end"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	SourceFile   string `json:"source_file"`
}

// Columns returns the export header.
func (ContactRecord) Columns() []string {
	return []string{"district_name", "year_end", "contact_name", "contact_email", "source_file"}
}

// Values returns the export row in Columns order.
func (c ContactRecord) Values() []any {
	return []any{c.DistrictName, c.YearEnd, c.ContactName, c.ContactEmail, c.SourceFile}
}
