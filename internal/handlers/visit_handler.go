package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

type VisitHandler struct {
	db *gorm.DB
}

func NewVisitHandler(db *gorm.DB) *VisitHandler {
	return &VisitHandler{db: db}
}

// --------- Requests ---------

type VisitRequest struct {
	Complaint     string `json:"complaint" binding:"required"`
	Findings      string `json:"findings"`
	Diagnosis     string `json:"diagnosis"`
	Prescriptions string `json:"prescriptions"`
	Vitals        string `json:"vitals"`
	Labs          string `json:"labs"`
	Procedures    string `json:"procedures"`
	FollowUpDate  string `json:"follow_up_date"`
	PaymentStatus string `json:"payment_status"`
}

// --------- Handlers ---------

func (h *VisitHandler) List(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var visits []models.Visit
	if err := h.db.
		Where("patient_id = ?", patient.ID).
		Order("created_at DESC").
		Find(&visits).Error; err != nil {
		httperr.Internal(c, "failed_to_list_visits", "Could not load visit history.")
		return
	}

	httpresp.OK(c, visits)
}

func (h *VisitHandler) Create(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, bindingFields(err))
		return
	}

	visit := models.Visit{
		PatientID:     patient.ID,
		Complaint:     req.Complaint,
		Findings:      req.Findings,
		Diagnosis:     req.Diagnosis,
		Prescriptions: req.Prescriptions,
		Vitals:        req.Vitals,
		Labs:          req.Labs,
		Procedures:    req.Procedures,
		FollowUpDate:  req.FollowUpDate,
		PaymentStatus: defaultPayment(req.PaymentStatus),
	}

	if err := h.db.Create(&visit).Error; err != nil {
		httperr.Internal(c, "failed_to_create_visit", "Could not save visit.")
		return
	}

	httpresp.Created(c, visit)
}

// Replace overwrites a visit wholesale. Visits are immutable values on
// the client side, so edits arrive as full replacements rather than
// field patches.
func (h *VisitHandler) Replace(c *gin.Context) {
	var visit models.Visit
	if err := h.db.
		Where("id = ? AND patient_id = ?", c.Param("visitId"), c.Param("id")).
		First(&visit).Error; err != nil {
		httperr.NotFound(c, "visit_not_found", "Visit not found.")
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, bindingFields(err))
		return
	}

	visit.Complaint = req.Complaint
	visit.Findings = req.Findings
	visit.Diagnosis = req.Diagnosis
	visit.Prescriptions = req.Prescriptions
	visit.Vitals = req.Vitals
	visit.Labs = req.Labs
	visit.Procedures = req.Procedures
	visit.FollowUpDate = req.FollowUpDate
	visit.PaymentStatus = defaultPayment(req.PaymentStatus)

	if err := h.db.Save(&visit).Error; err != nil {
		httperr.Internal(c, "failed_to_update_visit", "Could not save visit.")
		return
	}

	httpresp.OK(c, visit)
}

func defaultPayment(status string) string {
	if status == "" {
		return "pending"
	}
	return status
}
