package store

const (
	tableCostReports = "cost_reports"
	tableContacts    = "contact_info"
	tableFindings    = "desk_review_findings"
)

var schema = []string{`
CREATE TABLE cost_reports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  district_name TEXT NOT NULL,
  year_end TEXT NOT NULL,
  employee_name TEXT NOT NULL,
  salary NUMERIC,
  healthcare NUMERIC,
  retirement NUMERIC,
  federal_pct REAL,
  state_pct REAL,
  source_file TEXT NOT NULL,
  validation_passed INTEGER NOT NULL,
  validation_errors TEXT
);`, `
CREATE TABLE contact_info (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  district_name TEXT NOT NULL,
  year_end TEXT NOT NULL,
  contact_name TEXT,
  contact_email TEXT,
  source_file TEXT NOT NULL
);`, `
CREATE TABLE desk_review_findings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  district_name TEXT NOT NULL,
  year_end TEXT NOT NULL,
  report_id TEXT NOT NULL,
  finding_1_text TEXT NOT NULL,
  finding_1_x INTEGER NOT NULL,
  finding_1_y INTEGER NOT NULL,
  finding_2_text TEXT NOT NULL,
  finding_2_flag INTEGER NOT NULL,
  healthcare_pct_of_total_salary REAL,
  state_salary_threshold NUMERIC,
  healthcare_threshold NUMERIC
);`,
}

const insertCostReport = `
INSERT INTO cost_reports (
  district_name, year_end, employee_name, salary, healthcare, retirement,
  federal_pct, state_pct, source_file, validation_passed, validation_errors
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

const insertContact = `
INSERT INTO contact_info (
  district_name, year_end, contact_name, contact_email, source_file
) VALUES (?, ?, ?, ?, ?);`

const insertFinding = `
INSERT INTO desk_review_findings (
  district_name, year_end, report_id, finding_1_text, finding_1_x, finding_1_y,
  finding_2_text, finding_2_flag, healthcare_pct_of_total_salary,
  state_salary_threshold, healthcare_threshold
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
