package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*Handler, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return NewHandler(NewService(repo), 14), repo
}

func seedDoctor(t *testing.T, repo *mockRepo, ws WeeklySchedule) *Doctor {
	t.Helper()
	d := &Doctor{Name: "Dr. Rao", Specialization: "Cardiology", WeeklySchedule: ws}
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return d
}

func TestHandlerCreate(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	body := `{"name":"Dr. Rao","phone":"555-0100","specialization":"Cardiology"}`
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandlerCreate_MissingName(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(`{"specialization":"Cardiology"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2c3e03f1-5b05-41a0-b1cc-8b7f81e1a34a")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

// brokenRepo simulates a store that fails on every read.
type brokenRepo struct {
	mockRepo
	err error
}

func (b *brokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return nil, b.err
}

func TestHandlerGet_StoreFailureIsNot404(t *testing.T) {
	repo := &brokenRepo{err: errors.New("connection refused")}
	h := NewHandler(NewService(repo), 14)
	e := echo.New()

	paths := []struct {
		name string
		call func(echo.Context) error
		url  string
	}{
		{"get", h.Get, "/"},
		{"available dates", h.AvailableDates, "/?from=2026-08-31"},
		{"slots", h.Slots, "/?date=2026-08-31"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(http.MethodGet, p.url, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("2c3e03f1-5b05-41a0-b1cc-8b7f81e1a34a")

		err := p.call(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500 for a store failure, got %v", p.name, err)
		}
	}
}

func TestHandlerAvailableDates(t *testing.T) {
	h, repo := setupHandler(t)
	d := seedDoctor(t, repo, WeeklySchedule{"Monday": {"09:00"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-08-31&horizon_days=14", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID.String())

	if err := h.AvailableDates(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Dates) != 2 {
		t.Errorf("expected 2 dates, got %v", resp.Dates)
	}
}

func TestHandlerSlots(t *testing.T) {
	h, repo := setupHandler(t)
	d := seedDoctor(t, repo, WeeklySchedule{"Monday": {"09:00", "10:00"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?date=2026-08-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID.String())

	if err := h.Slots(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Slots) != 2 {
		t.Errorf("expected 2 slots, got %v", resp.Slots)
	}
}

func TestHandlerSlots_MissingDate(t *testing.T) {
	h, repo := setupHandler(t)
	d := seedDoctor(t, repo, WeeklySchedule{"Monday": {"09:00"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID.String())

	err := h.Slots(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerSetSchedule(t *testing.T) {
	h, repo := setupHandler(t)
	d := seedDoctor(t, repo, nil)

	e := echo.New()
	body := `{"Monday":["09:00","10:00"]}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID.String())

	if err := h.SetSchedule(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := repo.doctors[d.ID].WeeklySchedule
	if len(got["Monday"]) != 2 {
		t.Errorf("schedule not persisted: %v", got)
	}
	// The :id path param must not leak into the schedule as a key.
	if len(got) != 1 {
		t.Errorf("expected only Monday in the stored schedule, got %v", got)
	}
}
