package subset

// Table names as they appear inside the archive (without the .csv.gz
// suffix) and in the output directory (with .csv).
const (
	TableAdmissions    = "ADMISSIONS"
	TablePatients      = "PATIENTS"
	TableICUStays      = "ICUSTAYS"
	TableDiagnoses     = "DIAGNOSES_ICD"
	TableProcedures    = "PROCEDURES_ICD"
	TablePrescriptions = "PRESCRIPTIONS"
	TableChartEvents   = "CHARTEVENTS"
	TableLabEvents     = "LABEVENTS"

	// Dictionary tables are small global lookups, copied whole.
	TableDictDiagnoses  = "D_ICD_DIAGNOSES"
	TableDictProcedures = "D_ICD_PROCEDURES"
	TableDictItems      = "D_ITEMS"
	TableDictLabItems   = "D_LABITEMS"
)

// Key columns linking the tables.
const (
	ColAdmissionID = "HADM_ID"
	ColSubjectID   = "SUBJECT_ID"
	ColICUStayID   = "ICUSTAY_ID"
	ColItemID      = "ITEMID"
)

// RequiredTables must be present in the archive before any processing
// starts.
func RequiredTables() []string {
	return []string{TableAdmissions, TablePatients, TableICUStays}
}

// DictionaryTables lists the lookup tables copied without filtering.
func DictionaryTables() []string {
	return []string{
		TableDictDiagnoses,
		TableDictProcedures,
		TableDictItems,
		TableDictLabItems,
	}
}
