package identity

import "strings"

// SearchPatients returns the patients whose name, email or phone contains
// query, ignoring case. Order is preserved and an empty query matches all.
func SearchPatients(patients []Patient, query string) []Patient {
	q := strings.ToLower(query)
	out := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Email), q) ||
			strings.Contains(strings.ToLower(p.Phone), q) {
			out = append(out, p)
		}
	}
	return out
}
