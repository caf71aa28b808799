package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/models"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
	"github.com/clinicdesk/clinic-manager/internal/timeutil"
)

type ReportHandler struct {
	db *gorm.DB

	// now is swappable so report windows are testable.
	now func() time.Time
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db, now: time.Now}
}

// periodStart maps week|month|year onto the first date (inclusive) of
// the reporting window. Dates are compared as canonical YYYY-MM-DD
// strings, which order the same as the dates they name.
func (h *ReportHandler) periodStart(period string) string {
	now := h.now()
	switch period {
	case "week":
		return timeutil.FormatDate(now.AddDate(0, 0, -7))
	case "year":
		return timeutil.FormatDate(now.AddDate(-1, 0, 0))
	default: // month
		return timeutil.FormatDate(now.AddDate(0, -1, 0))
	}
}

// ======================================================
// ANALYTICS
// ======================================================

func (h *ReportHandler) Analytics(c *gin.Context) {
	since := h.periodStart(c.Query("period"))

	var total, completed, cancelled int64
	base := h.db.Model(&models.Appointment{}).Where("date >= ?", since)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build analytics report.")
		return
	}
	base.Session(&gorm.Session{}).Where("status = ?", string(schedule.StatusCompleted)).Count(&completed)
	base.Session(&gorm.Session{}).Where("status = ?", string(schedule.StatusCancelled)).Count(&cancelled)

	var revenue float64
	h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.name = appointments.type").
		Where("appointments.date >= ? AND appointments.status = ?", since, string(schedule.StatusCompleted)).
		Scan(&revenue)

	var newPatients int64
	h.db.Model(&models.Patient{}).
		Where("created_at >= ?", h.now().AddDate(0, -1, 0)).
		Count(&newPatients)

	httpresp.OK(c, gin.H{
		"since":              since,
		"total_appointments": total,
		"completed":          completed,
		"cancelled":          cancelled,
		"revenue":            revenue,
		"new_patients":       newPatients,
	})
}

// ======================================================
// APPOINTMENTS BY DAY
// ======================================================

type appointmentsByDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

func (h *ReportHandler) Appointments(c *gin.Context) {
	since := h.periodStart(c.Query("period"))

	q := h.db.Model(&models.Appointment{}).Where("date >= ?", since)
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		q = q.Where("doctor_id = ?", doctorID)
	}

	var rows []appointmentsByDay
	if err := q.
		Select("date, COUNT(*) as count").
		Group("date").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build appointment report.")
		return
	}

	byStatus := map[string]int64{}
	statusQ := h.db.Model(&models.Appointment{}).Where("date >= ?", since)
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		statusQ = statusQ.Where("doctor_id = ?", doctorID)
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	statusQ.Select("status, COUNT(*) as count").Group("status").Scan(&statusRows)
	for _, row := range statusRows {
		byStatus[row.Status] = row.Count
	}

	httpresp.OK(c, gin.H{
		"since":     since,
		"by_day":    rows,
		"by_status": byStatus,
	})
}

// ======================================================
// INVENTORY
// ======================================================

type inventoryReportItem struct {
	models.InventoryItem
	LowStock bool `json:"low_stock"`
}

func (h *ReportHandler) Inventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := h.db.
		Order("name ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build inventory report.")
		return
	}

	report := make([]inventoryReportItem, 0, len(items))
	lowCount := 0
	for _, item := range items {
		low := item.Quantity <= item.ReorderLevel
		if low {
			lowCount++
		}
		report = append(report, inventoryReportItem{InventoryItem: item, LowStock: low})
	}

	httpresp.OK(c, gin.H{
		"items":     report,
		"low_stock": lowCount,
	})
}

// ======================================================
// PATIENT DEMOGRAPHICS
// ======================================================

func (h *ReportHandler) Patients(c *gin.Context) {
	sinceTime := h.now().AddDate(0, -1, 0)
	switch c.Query("period") {
	case "week":
		sinceTime = h.now().AddDate(0, 0, -7)
	case "year":
		sinceTime = h.now().AddDate(-1, 0, 0)
	}

	var total, recent int64
	h.db.Model(&models.Patient{}).Count(&total)
	h.db.Model(&models.Patient{}).Where("created_at >= ?", sinceTime).Count(&recent)

	byGender := map[string]int64{}
	var genderRows []struct {
		Gender string
		Count  int64
	}
	h.db.Model(&models.Patient{}).
		Select("gender, COUNT(*) as count").
		Group("gender").
		Scan(&genderRows)
	for _, row := range genderRows {
		byGender[row.Gender] = row.Count
	}

	ageBuckets := map[string]int64{}
	buckets := []struct {
		label    string
		min, max int
	}{
		{"0-17", 0, 17},
		{"18-39", 18, 39},
		{"40-64", 40, 64},
		{"65+", 65, 200},
	}
	for _, b := range buckets {
		var n int64
		h.db.Model(&models.Patient{}).
			Where("age >= ? AND age <= ?", b.min, b.max).
			Count(&n)
		ageBuckets[b.label] = n
	}

	httpresp.OK(c, gin.H{
		"total":        total,
		"new_patients": recent,
		"by_gender":    byGender,
		"by_age":       ageBuckets,
	})
}
