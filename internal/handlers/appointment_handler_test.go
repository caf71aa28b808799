package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clinicdesk/clinic-manager/internal/audit"
	"github.com/clinicdesk/clinic-manager/internal/infra/repository"
	"github.com/clinicdesk/clinic-manager/internal/middleware"
	"github.com/clinicdesk/clinic-manager/internal/models"
	ucAppointment "github.com/clinicdesk/clinic-manager/internal/usecase/appointment"
)

func setupHandlerDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_h_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newAppointmentRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, dispatcher),
		ucAppointment.NewUpdateAppointment(repo, dispatcher),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewDeleteAppointment(repo, dispatcher),
	)

	r.GET("/api/appointments/", h.List)
	r.POST("/api/appointments/", h.Create)
	r.PATCH("/api/appointments/:id/", h.Update)
	r.DELETE("/api/appointments/:id/", h.Delete)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedHandlerRefData(t *testing.T, db *gorm.DB) (patientID, doctorID uint) {
	t.Helper()

	p := models.Patient{Name: "Rahim Uddin", Age: 34, Gender: "male", Phone: "01711000000"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	d := models.Doctor{Name: "Dr. Karim", Specialty: "Medicine"}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return p.ID, d.ID
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	db := setupHandlerDB(t, "create")
	patientID, doctorID := seedHandlerRefData(t, db)
	r := newAppointmentRouter(t, db)

	w := postJSON(t, r, http.MethodPost, "/api/appointments/", gin.H{
		"patient": patientID,
		"doctor":  doctorID,
		"date":    "2026-09-10",
		"time":    "14:00:00",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var ap models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &ap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ap.Status != "booked" || ap.Type != "General" {
		t.Errorf("unexpected appointment: %+v", ap)
	}
}

func TestCreateAppointmentEndpointConflict(t *testing.T) {
	db := setupHandlerDB(t, "conflict")
	patientID, doctorID := seedHandlerRefData(t, db)
	r := newAppointmentRouter(t, db)

	body := gin.H{
		"patient": patientID,
		"doctor":  doctorID,
		"date":    "2026-09-10",
		"time":    "09:00:00",
	}

	if w := postJSON(t, r, http.MethodPost, "/api/appointments/", body); w.Code != http.StatusCreated {
		t.Fatalf("first booking: %d", w.Code)
	}

	w := postJSON(t, r, http.MethodPost, "/api/appointments/", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "slot_taken" {
		t.Errorf("expected slot_taken, got %q", resp.Error)
	}
}

func TestCreateAppointmentEndpointValidation(t *testing.T) {
	db := setupHandlerDB(t, "validation")
	patientID, doctorID := seedHandlerRefData(t, db)
	r := newAppointmentRouter(t, db)

	// Missing required fields surface per-field messages.
	w := postJSON(t, r, http.MethodPost, "/api/appointments/", gin.H{"patient": patientID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "validation_error" {
		t.Errorf("expected validation_error, got %q", resp.Error)
	}
	for _, field := range []string{"doctor", "date", "time"} {
		if _, ok := resp.Fields[field]; !ok {
			t.Errorf("expected field message for %q, got %v", field, resp.Fields)
		}
	}

	// Malformed date is rejected before touching the schedule.
	w = postJSON(t, r, http.MethodPost, "/api/appointments/", gin.H{
		"patient": patientID,
		"doctor":  doctorID,
		"date":    "10/09/2026",
		"time":    "14:00:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", w.Code)
	}
}

func TestListAppointmentsEndpoint(t *testing.T) {
	db := setupHandlerDB(t, "list")
	patientID, doctorID := seedHandlerRefData(t, db)
	r := newAppointmentRouter(t, db)

	rows := []models.Appointment{
		{PatientID: patientID, DoctorID: doctorID, Type: "General", Date: "2026-09-10", Time: "09:00:00", Status: "booked"},
		{PatientID: patientID, DoctorID: doctorID, Type: "General", Date: "2026-09-10", Time: "09:30:00", Status: "cancelled"},
		{PatientID: patientID, DoctorID: doctorID, Type: "General", Date: "2026-09-11", Time: "08:00:00", Status: "booked"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := postJSON(t, r, http.MethodGet, "/api/appointments/?date=2026-09-10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []struct {
		PatientName string `json:"patient_name"`
		DoctorName  string `json:"doctor_name"`
		Time        string `json:"time"`
		Status      string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected both rows for the date, got %d", len(list))
	}
	if list[0].PatientName != "Rahim Uddin" || list[0].DoctorName != "Dr. Karim" {
		t.Errorf("expected denormalized names, got %+v", list[0])
	}

	if w := postJSON(t, r, http.MethodGet, "/api/appointments/?doctor=abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric doctor, got %d", w.Code)
	}
	if w := postJSON(t, r, http.MethodGet, "/api/appointments/?status=bogus", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestCreateAppointmentAuditsActor(t *testing.T) {
	db := setupHandlerDB(t, "audit_actor")
	patientID, doctorID := seedHandlerRefData(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(42))
		c.Next()
	})

	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, dispatcher),
		ucAppointment.NewUpdateAppointment(repo, dispatcher),
		ucAppointment.NewListAppointments(repo),
		ucAppointment.NewDeleteAppointment(repo, dispatcher),
	)
	r.POST("/api/appointments/", h.Create)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(gin.H{
		"patient": patientID,
		"doctor":  doctorID,
		"date":    "2026-09-10",
		"time":    "09:00:00",
	}); err != nil {
		t.Fatalf("encode body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// The audit write is async; wait for the worker to persist it.
	var logs []models.AuditLog
	deadline := time.Now().Add(2 * time.Second)
	for {
		db.Where("action = ?", "appointment_created").Find(&logs)
		if len(logs) > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("audit row never persisted")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if logs[0].RequestID != "req-abc-123" {
		t.Errorf("audit request_id = %q, want req-abc-123", logs[0].RequestID)
	}
	if logs[0].UserID == nil || *logs[0].UserID != 42 {
		t.Errorf("audit user_id = %v, want 42", logs[0].UserID)
	}
}

func TestUpdateAndDeleteAppointmentEndpoints(t *testing.T) {
	db := setupHandlerDB(t, "update")
	patientID, doctorID := seedHandlerRefData(t, db)
	r := newAppointmentRouter(t, db)

	ap := models.Appointment{PatientID: patientID, DoctorID: doctorID, Type: "General", Date: "2026-09-10", Time: "09:00:00", Status: "booked"}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	path := fmt.Sprintf("/api/appointments/%d/", ap.ID)

	w := postJSON(t, r, http.MethodPatch, path, gin.H{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Completed appointments refuse further status changes.
	w = postJSON(t, r, http.MethodPatch, path, gin.H{"status": "cancelled"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid transition, got %d", w.Code)
	}

	if w := postJSON(t, r, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w := postJSON(t, r, http.MethodPatch, path, gin.H{"notes": "x"}); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}
