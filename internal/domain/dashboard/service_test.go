package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinic/clinic/internal/domain/clinical"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/scheduling"
	"github.com/clinic/clinic/internal/platform/seed"
	"github.com/clinic/clinic/internal/platform/validation"
)

type fixture struct {
	stores seed.Stores
	appts  *scheduling.Service
	svc    *Service
}

func newFixture() *fixture {
	stores := seed.Stores{
		Patients:       identity.NewPatientRepoMem(),
		Doctors:        identity.NewDoctorRepoMem(),
		Appointments:   scheduling.NewAppointmentRepoMem(),
		MedicalRecords: clinical.NewMedicalRecordRepoMem(),
	}
	people := identity.NewService(stores.Patients, stores.Doctors, zerolog.Nop())
	appts := scheduling.NewService(stores.Appointments, people, zerolog.Nop())
	records := clinical.NewService(stores.MedicalRecords, people, zerolog.Nop())
	return &fixture{
		stores: stores,
		appts:  appts,
		svc:    NewService(people, appts, records, zerolog.Nop()),
	}
}

func newSeededFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()
	_, err := seed.Load(context.Background(), f.stores, zerolog.Nop())
	require.NoError(t, err)
	return f
}

func TestStats_SeedData(t *testing.T) {
	f := newSeededFixture(t)

	st, err := f.svc.Stats(context.Background(), seed.ReferenceDate)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		TotalPatients:     4,
		TotalDoctors:      3,
		TodayAppointments: 3,
		PendingRecords:    1,
	}, st)
}

func TestStats_OtherDay(t *testing.T) {
	f := newSeededFixture(t)

	st, err := f.svc.Stats(context.Background(), "2026-02-03")
	require.NoError(t, err)
	assert.Equal(t, 1, st.TodayAppointments)

	st, err = f.svc.Stats(context.Background(), "2027-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, st.TodayAppointments)
}

func TestStats_PendingRecordsCountsEmptyFollowUp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for i, followUp := range []string{"", "2026-02-20", ""} {
		require.NoError(t, f.stores.MedicalRecords.Insert(ctx, &clinical.MedicalRecord{
			ID:           fmt.Sprint(i + 1),
			PatientID:    "1",
			DoctorName:   "Dr. Test",
			Date:         "2026-02-01",
			Diagnosis:    "Check",
			Prescription: "None",
			FollowUpDate: followUp,
		}))
	}

	st, err := f.svc.Stats(ctx, "2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, 2, st.PendingRecords)
}

func TestRecentAppointments_SeedData(t *testing.T) {
	f := newSeededFixture(t)

	recent, err := f.svc.RecentAppointments(context.Background(), seed.ReferenceDate)
	require.NoError(t, err)
	assert.Equal(t, []RecentAppointment{
		{ID: "1", PatientName: "Sarah Johnson", DoctorName: "Amanda Peterson", Time: "10:00", Status: "Confirmed"},
		{ID: "2", PatientName: "Michael Chen", DoctorName: "Robert Kumar", Time: "11:30", Status: "Pending"},
		{ID: "3", PatientName: "Emily Rodriguez", DoctorName: "Lisa Thompson", Time: "14:00", Status: "Confirmed"},
	}, recent)
}

func TestRecentAppointments_Limit(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()
	var booked []string
	for i := 0; i < 7; i++ {
		a := &scheduling.Appointment{
			PatientID: "2",
			DoctorID:  "3",
			Date:      "2026-03-10",
			Time:      fmt.Sprintf("%02d:00", 9+i),
		}
		require.NoError(t, f.appts.CreateAppointment(ctx, a))
		booked = append(booked, a.ID)
	}

	recent, err := f.svc.RecentAppointments(ctx, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)
	for i, r := range recent {
		assert.Equal(t, booked[i], r.ID)
	}

	st, err := f.svc.Stats(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 7, st.TodayAppointments)
}

func TestRecentAppointments_Empty(t *testing.T) {
	f := newFixture()
	recent, err := f.svc.RecentAppointments(context.Background(), "2026-02-02")
	require.NoError(t, err)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestSummary(t *testing.T) {
	f := newSeededFixture(t)

	sum, err := f.svc.Summary(context.Background(), seed.ReferenceDate)
	require.NoError(t, err)
	assert.Equal(t, seed.ReferenceDate, sum.Today)
	assert.Equal(t, 3, sum.Stats.TodayAppointments)
	assert.Len(t, sum.RecentAppointments, 3)
}

func TestSummary_ReflectsWrites(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	require.NoError(t, f.appts.DeleteAppointment(ctx, "2"))
	sum, err := f.svc.Summary(ctx, seed.ReferenceDate)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Stats.TodayAppointments)
	assert.Equal(t, "3", sum.RecentAppointments[1].ID)
}

func TestStats_InvalidDay(t *testing.T) {
	f := newFixture()
	for _, day := range []string{"", "today", "2026-13-01", "2026/02/02"} {
		_, err := f.svc.Stats(context.Background(), day)
		assert.True(t, errors.Is(err, validation.ErrInvalid), "day %q: got %v", day, err)
		_, err = f.svc.RecentAppointments(context.Background(), day)
		assert.True(t, errors.Is(err, validation.ErrInvalid), "day %q: got %v", day, err)
	}
}
