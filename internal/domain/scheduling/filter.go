package scheduling

// FilterByDate returns the appointments booked on date (YYYY-MM-DD), in
// booking order.
func FilterByDate(appts []Appointment, date string) []Appointment {
	return filter(appts, func(a Appointment) bool { return a.Date == date })
}

// ListByPatient returns the appointments for patientID.
func ListByPatient(appts []Appointment, patientID string) []Appointment {
	return filter(appts, func(a Appointment) bool { return a.PatientID == patientID })
}

// ListByDoctor returns the appointments with doctorID.
func ListByDoctor(appts []Appointment, doctorID string) []Appointment {
	return filter(appts, func(a Appointment) bool { return a.DoctorID == doctorID })
}

// Filter narrows an appointment listing. Empty fields match everything.
type Filter struct {
	Date      string
	PatientID string
	DoctorID  string
}

// Apply runs every non-empty criterion over appts.
func (f Filter) Apply(appts []Appointment) []Appointment {
	if f.Date != "" {
		appts = FilterByDate(appts, f.Date)
	}
	if f.PatientID != "" {
		appts = ListByPatient(appts, f.PatientID)
	}
	if f.DoctorID != "" {
		appts = ListByDoctor(appts, f.DoctorID)
	}
	return appts
}

func filter(appts []Appointment, keep func(Appointment) bool) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
