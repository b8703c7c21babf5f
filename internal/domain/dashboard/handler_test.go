package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_GetSummary_DefaultsToToday(t *testing.T) {
	f := newSeededFixture(t)
	h := NewHandler(f.svc, func() string { return "2026-02-03" })
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got Summary
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Today != "2026-02-03" {
		t.Errorf("expected today 2026-02-03, got %s", got.Today)
	}
	if got.Stats.TodayAppointments != 1 || len(got.RecentAppointments) != 1 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.RecentAppointments[0].PatientName != "James Wilson" {
		t.Errorf("expected James Wilson, got %s", got.RecentAppointments[0].PatientName)
	}
}

func TestHandler_GetSummary_ExplicitDay(t *testing.T) {
	f := newSeededFixture(t)
	h := NewHandler(f.svc, func() string { return "2030-01-01" })
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?today=2026-02-02", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Summary
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Stats.TotalPatients != 4 || got.Stats.TodayAppointments != 3 || got.Stats.PendingRecords != 1 {
		t.Errorf("unexpected stats: %+v", got.Stats)
	}
}

func TestHandler_GetSummary_BadDay(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc, func() string { return "2026-02-02" })
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?today=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetSummary(c)
	if err == nil {
		t.Fatal("expected error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
