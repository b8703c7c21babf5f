package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := newTestService()
	h := NewHandler(svc, func() string { return "2026-02-02" })
	e := echo.New()
	return h, e
}

func expectHTTPStatus(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d", code)
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != code {
		t.Errorf("expected %d, got %d", code, httpErr.Code)
	}
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Michael Chen","age":45,"gender":"Male","phone":"+1 (555) 234-5678",` +
		`"email":"michael.chen@email.com","bloodGroup":"A+","address":"456 Oak Ave"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID == "" {
		t.Error("expected id in response")
	}
	if got.LastVisit != "2026-02-02" {
		t.Errorf("expected lastVisit to default to today, got %q", got.LastVisit)
	}
}

func TestHandler_CreatePatient_IgnoresClientID(t *testing.T) {
	h, e := newTestHandler()
	body := `{"id":"client-chosen","name":"A","age":1,"gender":"Other","phone":"1","email":"a@b.c",` +
		`"bloodGroup":"B-","address":"x","lastVisit":"2026-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID == "client-chosen" {
		t.Error("expected server-assigned id")
	}
	if got.LastVisit != "2026-01-01" {
		t.Errorf("expected supplied lastVisit kept, got %q", got.LastVisit)
	}
}

func TestHandler_CreatePatient_BadRequest(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	expectHTTPStatus(t, h.CreatePatient(c), http.StatusBadRequest)
}

func TestHandler_CreatePatient_MalformedJSON(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":"old"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	expectHTTPStatus(t, h.CreatePatient(c), http.StatusBadRequest)
}

func TestHandler_GetPatient(t *testing.T) {
	h, e := newTestHandler()
	p := validPatient()
	h.svc.CreatePatient(context.Background(), p)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	if err := h.GetPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	expectHTTPStatus(t, h.GetPatient(c), http.StatusNotFound)
}

func TestHandler_ListPatients_Search(t *testing.T) {
	h, e := newTestHandler()
	p1 := validPatient()
	p2 := validPatient()
	p2.Name = "James Wilson"
	p2.Email = "james.wilson@email.com"
	p2.Phone = "+1 (555) 456-7890"
	h.svc.CreatePatient(context.Background(), p1)
	h.svc.CreatePatient(context.Background(), p2)

	req := httptest.NewRequest(http.MethodGet, "/?q=wilson", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].ID != p2.ID {
		t.Errorf("expected only James Wilson, got %+v", got)
	}
}

func TestHandler_UpdatePatient(t *testing.T) {
	h, e := newTestHandler()
	p := validPatient()
	h.svc.CreatePatient(context.Background(), p)

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"address":"9 New Rd"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	if err := h.UpdatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got Patient
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Address != "9 New Rd" || got.Name != "Sarah Johnson" {
		t.Errorf("unexpected patient: %+v", got)
	}
}

func TestHandler_UpdatePatient_Missing(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"address":"9 New Rd"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.UpdatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_DeletePatient(t *testing.T) {
	h, e := newTestHandler()
	p := validPatient()
	h.svc.CreatePatient(context.Background(), p)

	for _, id := range []string{p.ID, p.ID, "never-existed"} {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		if err := h.DeletePatient(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	}
}

func TestHandler_CreateDoctor(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Lisa Thompson","specialization":"Dermatologist","qualification":"MBBS, MD",` +
		`"experience":8,"phone":"+1 (555) 333-4444","email":"dr.thompson@clinic.com",` +
		`"availability":"Mon-Fri, 10AM-4PM","consultationFee":180}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateDoctor_BadRequest(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"No Specialty"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	expectHTTPStatus(t, h.CreateDoctor(c), http.StatusBadRequest)
}

func TestHandler_UpdateDoctor_Invalid(t *testing.T) {
	h, e := newTestHandler()
	d := validDoctor()
	h.svc.CreateDoctor(context.Background(), d)

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"experience":-2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID)

	expectHTTPStatus(t, h.UpdateDoctor(c), http.StatusBadRequest)
}

func TestHandler_ListDoctors(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateDoctor(context.Background(), validDoctor())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []Doctor
	json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 {
		t.Errorf("expected 1 doctor, got %d", len(got))
	}
}
