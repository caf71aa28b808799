package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-manager/internal/dto"
	"github.com/clinicdesk/clinic-manager/internal/httperr"
	"github.com/clinicdesk/clinic-manager/internal/httpresp"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
	ucAppointment "github.com/clinicdesk/clinic-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	listUC   *ucAppointment.ListAppointments
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	listUC *ucAppointment.ListAppointments,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Patient uint   `json:"patient" binding:"required"`
	Doctor  uint   `json:"doctor" binding:"required"`
	Type    string `json:"type"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, bindingFields(err))
		return
	}

	requestID, userID := auditActor(c)

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID: req.Patient,
		DoctorID:  req.Doctor,
		Type:      req.Type,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		RequestID: requestID,
		UserID:    userID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "patient_not_found"):
			httperr.BadRequest(c, "patient_not_found", "Patient not found.")
		case httperr.IsBusiness(err, "doctor_not_found"):
			httperr.BadRequest(c, "doctor_not_found", "Doctor not found.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.Validation(c, map[string]string{"date": "must be YYYY-MM-DD"})
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.Validation(c, map[string]string{"time": "must be HH:MM:SS"})
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			httperr.Conflict(c, httperr.CodeSlotTaken, "That time slot is already booked.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not save appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := schedule.ListFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	if doctorStr := c.Query("doctor"); doctorStr != "" {
		doctorID, err := strconv.ParseUint(doctorStr, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_doctor", "Doctor filter must be numeric.")
			return
		}
		filter.DoctorID = uint(doctorID)
	}

	if filter.Status != "" && !schedule.IsValidStatus(filter.Status) {
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, dto.FromAppointments(aps))
}

// ======================================================
// UPDATE (status / notes)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	requestID, userID := auditActor(c)

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:        uint(id),
		Status:    req.Status,
		Notes:     req.Notes,
		RequestID: requestID,
		UserID:    userID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.BadRequest(c, httperr.CodeInvalidState, "Appointment cannot change to that status.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Could not save appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	requestID, userID := auditActor(c)

	if err := h.deleteUC.Execute(c.Request.Context(), ucAppointment.DeleteAppointmentInput{
		ID:        uint(id),
		RequestID: requestID,
		UserID:    userID,
	}); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete appointment.")
		return
	}

	c.Status(http.StatusNoContent)
}
