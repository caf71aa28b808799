package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/models"
)

// Doctors are reference data: this handler only reads.
type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

func (h *DoctorHandler) List(c *gin.Context) {
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))

	q := h.db.Session(&gorm.Session{})
	if specialty != "" {
		q = q.Where("LOWER(specialty) = ?", specialty)
	}

	var doctors []models.Doctor
	if err := q.
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	httpresp.OK(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	var doctor models.Doctor
	if err := h.db.First(&doctor, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doctor)
}
