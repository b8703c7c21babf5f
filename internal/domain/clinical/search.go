package clinical

import "strings"

// SearchRecords returns the records whose patient name, diagnosis or doctor
// name contains query, ignoring case. Order is preserved.
func SearchRecords(records []MedicalRecord, query string) []MedicalRecord {
	q := strings.ToLower(query)
	out := make([]MedicalRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.PatientName), q) ||
			strings.Contains(strings.ToLower(r.Diagnosis), q) ||
			strings.Contains(strings.ToLower(r.DoctorName), q) {
			out = append(out, r)
		}
	}
	return out
}

// ListByPatient returns the records written for patientID.
func ListByPatient(records []MedicalRecord, patientID string) []MedicalRecord {
	out := make([]MedicalRecord, 0, len(records))
	for _, r := range records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out
}
