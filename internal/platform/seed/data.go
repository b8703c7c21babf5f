// Package seed loads the fixed demo dataset the clinic starts with. Every
// call returns fresh values so callers may modify them freely.
package seed

import (
	"github.com/clinic/clinic/internal/domain/clinical"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/scheduling"
)

// ReferenceDate is the clinic day the seeded appointments are booked around.
const ReferenceDate = "2026-02-02"

// ---------------------------------------------------------------------------
// Patients
// ---------------------------------------------------------------------------

func Patients() []identity.Patient {
	return []identity.Patient{
		{
			ID:         "1",
			Name:       "Sarah Johnson",
			Age:        34,
			Gender:     "Female",
			Phone:      "+1 (555) 123-4567",
			Email:      "sarah.johnson@email.com",
			BloodGroup: "O+",
			Address:    "123 Main St, New York, NY 10001",
			LastVisit:  "2026-01-28",
		},
		{
			ID:         "2",
			Name:       "Michael Chen",
			Age:        45,
			Gender:     "Male",
			Phone:      "+1 (555) 234-5678",
			Email:      "michael.chen@email.com",
			BloodGroup: "A+",
			Address:    "456 Oak Ave, Brooklyn, NY 11201",
			LastVisit:  "2026-01-30",
		},
		{
			ID:         "3",
			Name:       "Emily Rodriguez",
			Age:        28,
			Gender:     "Female",
			Phone:      "+1 (555) 345-6789",
			Email:      "emily.rodriguez@email.com",
			BloodGroup: "B+",
			Address:    "789 Pine Rd, Queens, NY 11354",
			LastVisit:  "2026-02-01",
		},
		{
			ID:         "4",
			Name:       "James Wilson",
			Age:        52,
			Gender:     "Male",
			Phone:      "+1 (555) 456-7890",
			Email:      "james.wilson@email.com",
			BloodGroup: "AB+",
			Address:    "321 Elm St, Manhattan, NY 10002",
			LastVisit:  "2026-01-25",
		},
	}
}

// ---------------------------------------------------------------------------
// Doctors
// ---------------------------------------------------------------------------

func Doctors() []identity.Doctor {
	return []identity.Doctor{
		{
			ID:              "1",
			Name:            "Amanda Peterson",
			Specialization:  "Cardiologist",
			Qualification:   "MBBS, MD (Cardiology)",
			Experience:      15,
			Phone:           "+1 (555) 111-2222",
			Email:           "dr.peterson@clinic.com",
			Availability:    "Mon-Fri, 9AM-5PM",
			ConsultationFee: 150,
		},
		{
			ID:              "2",
			Name:            "Robert Kumar",
			Specialization:  "General Physician",
			Qualification:   "MBBS, MD",
			Experience:      10,
			Phone:           "+1 (555) 222-3333",
			Email:           "dr.kumar@clinic.com",
			Availability:    "Mon-Sat, 8AM-6PM",
			ConsultationFee: 100,
		},
		{
			ID:              "3",
			Name:            "Lisa Thompson",
			Specialization:  "Pediatrician",
			Qualification:   "MBBS, MD (Pediatrics)",
			Experience:      12,
			Phone:           "+1 (555) 333-4444",
			Email:           "dr.thompson@clinic.com",
			Availability:    "Mon-Fri, 10AM-4PM",
			ConsultationFee: 120,
		},
	}
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

func Appointments() []scheduling.Appointment {
	return []scheduling.Appointment{
		{
			ID:          "1",
			PatientID:   "1",
			PatientName: "Sarah Johnson",
			DoctorID:    "1",
			DoctorName:  "Amanda Peterson",
			Date:        "2026-02-02",
			Time:        "10:00",
			Type:        scheduling.TypeFollowUp,
			Status:      scheduling.StatusConfirmed,
			Notes:       "Regular checkup for blood pressure monitoring",
		},
		{
			ID:          "2",
			PatientID:   "2",
			PatientName: "Michael Chen",
			DoctorID:    "2",
			DoctorName:  "Robert Kumar",
			Date:        "2026-02-02",
			Time:        "11:30",
			Type:        scheduling.TypeConsultation,
			Status:      scheduling.StatusPending,
			Notes:       "Complaint of persistent headaches",
		},
		{
			ID:          "3",
			PatientID:   "3",
			PatientName: "Emily Rodriguez",
			DoctorID:    "3",
			DoctorName:  "Lisa Thompson",
			Date:        "2026-02-02",
			Time:        "14:00",
			Type:        scheduling.TypeCheckUp,
			Status:      scheduling.StatusConfirmed,
			Notes:       "Annual health screening",
		},
		{
			ID:          "4",
			PatientID:   "4",
			PatientName: "James Wilson",
			DoctorID:    "1",
			DoctorName:  "Amanda Peterson",
			Date:        "2026-02-03",
			Time:        "09:00",
			Type:        scheduling.TypeFollowUp,
			Status:      scheduling.StatusConfirmed,
			Notes:       "Post-surgery follow-up",
		},
	}
}

// ---------------------------------------------------------------------------
// Medical records
// ---------------------------------------------------------------------------

func MedicalRecords() []clinical.MedicalRecord {
	return []clinical.MedicalRecord{
		{
			ID:           "1",
			PatientID:    "1",
			PatientName:  "Sarah Johnson",
			DoctorName:   "Amanda Peterson",
			Date:         "2026-01-28",
			Diagnosis:    "Hypertension - Stage 1",
			Prescription: "Lisinopril 10mg - Once daily in the morning\nAmlodipine 5mg - Once daily",
			Notes:        "Patient advised to reduce salt intake and exercise regularly. Schedule follow-up in 2 weeks.",
			Tests:        "Blood Pressure Monitoring, ECG",
			FollowUpDate: "2026-02-11",
		},
		{
			ID:           "2",
			PatientID:    "2",
			PatientName:  "Michael Chen",
			DoctorName:   "Robert Kumar",
			Date:         "2026-01-30",
			Diagnosis:    "Migraine",
			Prescription: "Sumatriptan 50mg - As needed for migraine attacks\nPropranolol 40mg - Twice daily for prevention",
			Notes:        "Patient reports stress-related triggers. Recommended stress management techniques.",
			Tests:        "CT Scan scheduled",
			FollowUpDate: "2026-02-13",
		},
		{
			ID:           "3",
			PatientID:    "3",
			PatientName:  "Emily Rodriguez",
			DoctorName:   "Lisa Thompson",
			Date:         "2026-02-01",
			Diagnosis:    "Seasonal Allergies",
			Prescription: "Cetirizine 10mg - Once daily\nFluticasone nasal spray - Twice daily",
			Notes:        "Symptoms worsen during spring. Patient advised to avoid outdoor activities during high pollen counts.",
			Tests:        "Allergy Panel",
			FollowUpDate: "",
		},
	}
}
