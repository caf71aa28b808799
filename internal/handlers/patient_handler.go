package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

// --------- Requests ---------

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Age       int    `json:"age" binding:"required,min=0,max=150"`
	Gender    string `json:"gender" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	History   string `json:"history"`
	Allergies string `json:"allergies"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	History   *string `json:"history,omitempty"`
	Allergies *string `json:"allergies,omitempty"`
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Could not load patients.")
		return
	}

	httpresp.OK(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	httpresp.OK(c, patient)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, bindingFields(err))
		return
	}

	patient := models.Patient{
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		Gender:    req.Gender,
		Phone:     req.Phone,
		History:   req.History,
		Allergies: req.Allergies,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Could not save patient.")
		return
	}

	httpresp.Created(c, patient)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid patient data.")
		return
	}

	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		if *req.Age < 0 || *req.Age > 150 {
			httperr.Validation(c, map[string]string{"age": "must be between 0 and 150"})
			return
		}
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.History != nil {
		patient.History = *req.History
	}
	if req.Allergies != nil {
		patient.Allergies = *req.Allergies
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not save patient.")
		return
	}

	httpresp.OK(c, patient)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	var patient models.Patient
	if err := h.db.First(&patient, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	if err := h.db.Delete(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_patient", "Could not delete patient.")
		return
	}

	c.Status(http.StatusNoContent)
}
