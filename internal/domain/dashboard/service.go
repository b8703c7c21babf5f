// Package dashboard computes the clinic overview from the current contents
// of the other domains. Nothing is cached; every call reads fresh snapshots.
package dashboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain/clinical"
	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/platform/validation"
)

// RecentLimit caps the number of appointments in RecentAppointments.
const RecentLimit = 5

type Directory interface {
	CountPatients(ctx context.Context) (int, error)
	CountDoctors(ctx context.Context) (int, error)
}

type AppointmentSource interface {
	ListByDate(ctx context.Context, date string) ([]scheduling.Appointment, error)
}

type RecordSource interface {
	ListRecords(ctx context.Context) ([]clinical.MedicalRecord, error)
}

// Stats are the headline counters shown on the dashboard.
type Stats struct {
	TotalPatients     int `json:"totalPatients"`
	TotalDoctors      int `json:"totalDoctors"`
	TodayAppointments int `json:"todayAppointments"`
	PendingRecords    int `json:"pendingRecords"`
}

// RecentAppointment is the dashboard projection of an appointment.
type RecentAppointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type Summary struct {
	Today              string              `json:"today"`
	Stats              Stats               `json:"stats"`
	RecentAppointments []RecentAppointment `json:"recentAppointments"`
}

type Service struct {
	directory    Directory
	appointments AppointmentSource
	records      RecordSource
	logger       zerolog.Logger
}

func NewService(dir Directory, appts AppointmentSource, records RecordSource, logger zerolog.Logger) *Service {
	return &Service{
		directory:    dir,
		appointments: appts,
		records:      records,
		logger:       logger.With().Str("domain", "dashboard").Logger(),
	}
}

// Stats computes the counters for the given day (YYYY-MM-DD).
func (s *Service) Stats(ctx context.Context, today string) (Stats, error) {
	if err := checkDay(today); err != nil {
		return Stats{}, err
	}
	var st Stats
	var err error
	if st.TotalPatients, err = s.directory.CountPatients(ctx); err != nil {
		return Stats{}, fmt.Errorf("count patients: %w", err)
	}
	if st.TotalDoctors, err = s.directory.CountDoctors(ctx); err != nil {
		return Stats{}, fmt.Errorf("count doctors: %w", err)
	}
	todays, err := s.appointments.ListByDate(ctx, today)
	if err != nil {
		return Stats{}, fmt.Errorf("list appointments: %w", err)
	}
	st.TodayAppointments = len(todays)
	records, err := s.records.ListRecords(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list medical records: %w", err)
	}
	for i := range records {
		if records[i].PendingFollowUp() {
			st.PendingRecords++
		}
	}
	return st, nil
}

// RecentAppointments returns up to RecentLimit of the day's appointments in
// booking order.
func (s *Service) RecentAppointments(ctx context.Context, today string) ([]RecentAppointment, error) {
	if err := checkDay(today); err != nil {
		return nil, err
	}
	todays, err := s.appointments.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return project(todays), nil
}

// Summary returns Stats and RecentAppointments for the same day.
func (s *Service) Summary(ctx context.Context, today string) (*Summary, error) {
	st, err := s.Stats(ctx, today)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentAppointments(ctx, today)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("today", today).Int("today_appointments", st.TodayAppointments).Msg("summary computed")
	return &Summary{Today: today, Stats: st, RecentAppointments: recent}, nil
}

func project(appts []scheduling.Appointment) []RecentAppointment {
	n := len(appts)
	if n > RecentLimit {
		n = RecentLimit
	}
	out := make([]RecentAppointment, n)
	for i := 0; i < n; i++ {
		a := appts[i]
		out[i] = RecentAppointment{
			ID:          a.ID,
			PatientName: a.PatientName,
			DoctorName:  a.DoctorName,
			Time:        a.Time,
			Status:      a.Status,
		}
	}
	return out
}

func checkDay(today string) error {
	var v validation.Errors
	v.Required("today", today)
	v.Date("today", today)
	return v.Err()
}
