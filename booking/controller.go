// Package booking drives the appointment booking form: reference-data
// loading, patient/doctor/service/date/time selection, slot conflict
// filtering, and submission. It is the headless version of the booking
// screen; a UI layers rendering on top of these operations.
package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/clinicdesk/clinic-manager/apiclient"
	"github.com/clinicdesk/clinic-manager/internal/calendar"
	"github.com/clinicdesk/clinic-manager/internal/schedule"
	"github.com/clinicdesk/clinic-manager/internal/timeutil"
)

// API is the slice of the apiclient the booking form needs.
type API interface {
	ListPatients(ctx context.Context, query string) apiclient.Result[[]apiclient.Patient]
	ListDoctors(ctx context.Context) apiclient.Result[[]apiclient.Doctor]
	ListServices(ctx context.Context) apiclient.Result[[]apiclient.Service]
	ListAppointments(ctx context.Context, filter apiclient.AppointmentFilter) apiclient.Result[[]apiclient.Appointment]
	CreateAppointment(ctx context.Context, in apiclient.AppointmentInput) apiclient.Result[apiclient.Appointment]
}

// Compile-time check
var _ API = (*apiclient.Client)(nil)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseSubmitting Phase = "submitting"
)

var (
	ErrNotReady      = errors.New("booking: form is not ready for input")
	ErrNoDate        = errors.New("booking: pick a date before a time")
	ErrPastDate      = errors.New("booking: date is in the past")
	ErrSlotBooked    = errors.New("booking: that time slot is already booked")
	ErrUnknownSlot   = errors.New("booking: time is not in the slot catalog")
	ErrMissingFields = errors.New("booking: patient, doctor, date and time are required")
)

// Notification is the transient success message shown after booking.
type Notification struct {
	PatientName string
	Date        string
	Time        string
}

// Controller owns the booking form's state. All operations are safe
// for concurrent use; availability responses carry a generation token
// so a stale fetch can never overwrite a fresher one.
type Controller struct {
	api API

	mu    sync.Mutex
	phase Phase

	patients []apiclient.Patient
	doctors  []apiclient.Doctor
	services []apiclient.Service

	patientID uint
	doctorID  uint
	service   string
	date      string
	timeLabel string
	notes     string

	booked     map[string]bool
	fetchToken uint64
	fetchErr   string

	// now is swappable so past-date checks are testable.
	now func() time.Time
}

func NewController(api API) *Controller {
	return &Controller{
		api:    api,
		phase:  PhaseIdle,
		booked: map[string]bool{},
		now:    time.Now,
	}
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Selection is a snapshot of the form's current field values.
type Selection struct {
	Patient uint
	Doctor  uint
	Service string
	Date    string
	Time    string
	Notes   string
}

func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Selection{
		Patient: c.patientID,
		Doctor:  c.doctorID,
		Service: c.service,
		Date:    c.date,
		Time:    c.timeLabel,
		Notes:   c.notes,
	}
}

// ======================================================
// LOADING
// ======================================================

// Load fetches the reference data the form needs. The form accepts no
// input until it succeeds; a failed load leaves the form idle so the
// caller can retry.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseLoading || c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.phase = PhaseLoading
	c.mu.Unlock()

	patients := c.api.ListPatients(ctx, "")
	doctors := c.api.ListDoctors(ctx)
	services := c.api.ListServices(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, msg := range []string{patients.Error, doctors.Error, services.Error} {
		if msg != "" {
			c.phase = PhaseIdle
			return errors.New(msg)
		}
	}

	c.patients = patients.Data
	c.doctors = doctors.Data
	c.services = services.Data
	c.phase = PhaseReady
	return nil
}

// ======================================================
// SELECTION
// ======================================================

func (c *Controller) SelectPatient(id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseReady {
		return ErrNotReady
	}
	c.patientID = id
	return nil
}

// SelectDoctor re-fetches availability for the currently selected
// date, even when the date has not changed: the new doctor's calendar
// is a different calendar.
func (c *Controller) SelectDoctor(ctx context.Context, id uint) error {
	c.mu.Lock()
	if c.phase != PhaseReady {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.doctorID = id
	refetch := c.date != ""
	c.mu.Unlock()

	if refetch {
		c.RefreshAvailability(ctx)
	}
	return nil
}

func (c *Controller) SelectService(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseReady {
		return ErrNotReady
	}
	c.service = name
	return nil
}

// SelectDate rejects days strictly before today, clears any previously
// chosen time, since availability is date-dependent, then re-fetches
// the booked slots.
func (c *Controller) SelectDate(ctx context.Context, date string) error {
	c.mu.Lock()
	if c.phase != PhaseReady {
		c.mu.Unlock()
		return ErrNotReady
	}
	d, err := timeutil.ParseDate(date)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if calendar.IsPast(d.Year(), d.Month(), d.Day(), c.now()) {
		c.mu.Unlock()
		return ErrPastDate
	}
	c.date = date
	c.timeLabel = ""
	refetch := c.doctorID != 0
	c.mu.Unlock()

	if refetch {
		c.RefreshAvailability(ctx)
	}
	return nil
}

// SelectTime takes a 12-hour slot label from the catalog.
func (c *Controller) SelectTime(label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseReady {
		return ErrNotReady
	}
	if c.date == "" {
		return ErrNoDate
	}
	if !inCatalog(label) {
		return ErrUnknownSlot
	}
	if c.booked[label] {
		return ErrSlotBooked
	}
	c.timeLabel = label
	return nil
}

func (c *Controller) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = notes
}

func inCatalog(label string) bool {
	for _, slot := range schedule.Catalog() {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// ======================================================
// AVAILABILITY
// ======================================================

// RefreshAvailability fetches the booked slots for the current
// (date, doctor) pair. Each fetch takes a fresh generation token;
// only the response matching the latest token may update state, so
// rapid date or doctor switching cannot surface stale slots.
func (c *Controller) RefreshAvailability(ctx context.Context) {
	c.mu.Lock()
	date, doctorID := c.date, c.doctorID
	if date == "" || doctorID == 0 {
		c.mu.Unlock()
		return
	}
	token := c.beginFetchLocked()
	c.mu.Unlock()

	res := c.api.ListAppointments(ctx, apiclient.AppointmentFilter{
		Date:   date,
		Doctor: doctorID,
	})

	c.applyAvailability(token, res)
}

func (c *Controller) beginFetchLocked() uint64 {
	c.fetchToken++
	return c.fetchToken
}

// applyAvailability folds a fetch response into the booked-slot set,
// discarding it when a newer fetch has started since.
func (c *Controller) applyAvailability(token uint64, res apiclient.Result[[]apiclient.Appointment]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.fetchToken {
		return false
	}

	if !res.Success {
		c.fetchErr = res.Error
		return true
	}

	bookings := make([]schedule.Booking, 0, len(res.Data))
	for _, ap := range res.Data {
		bookings = append(bookings, schedule.Booking{Time: ap.Time, Status: ap.Status})
	}

	c.booked = schedule.BookedLabels(bookings)
	c.fetchErr = ""
	return true
}

// Slots returns the catalog annotated with the current booked flags.
func (c *Controller) Slots() []schedule.SlotAvailability {
	c.mu.Lock()
	defer c.mu.Unlock()

	catalog := schedule.Catalog()
	out := make([]schedule.SlotAvailability, 0, len(catalog))
	for _, slot := range catalog {
		out = append(out, schedule.SlotAvailability{
			Slot:   slot,
			Booked: c.booked[slot.Label],
		})
	}
	return out
}

// AvailabilityError reports the last failed availability fetch, empty
// when the latest fetch succeeded.
func (c *Controller) AvailabilityError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchErr
}

// ======================================================
// SUBMIT
// ======================================================

// Submit validates the form, books the appointment, and on success
// resets every field except the doctor selection. On failure the form
// is left untouched so the user can retry.
func (c *Controller) Submit(ctx context.Context) (Notification, error) {
	c.mu.Lock()
	if c.phase != PhaseReady {
		c.mu.Unlock()
		return Notification{}, ErrNotReady
	}

	if c.patientID == 0 || c.doctorID == 0 || c.date == "" || c.timeLabel == "" {
		c.mu.Unlock()
		return Notification{}, ErrMissingFields
	}

	time24 := timeutil.To24Hour(c.timeLabel)

	apType := c.service
	if apType == "" {
		apType = "General"
	}

	input := apiclient.AppointmentInput{
		Patient: c.patientID,
		Doctor:  c.doctorID,
		Type:    apType,
		Date:    c.date,
		Time:    time24,
		Notes:   c.notes,
	}
	patientName := c.patientName(c.patientID)
	date, label := c.date, c.timeLabel

	c.phase = PhaseSubmitting
	c.mu.Unlock()

	res := c.api.CreateAppointment(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseReady

	if !res.Success {
		return Notification{}, errors.New(res.Error)
	}

	// Reset everything except the doctor, which persists as a
	// convenience default for back-to-back bookings.
	c.patientID = 0
	c.service = ""
	c.date = ""
	c.timeLabel = ""
	c.notes = ""
	c.booked = map[string]bool{}

	return Notification{
		PatientName: patientName,
		Date:        date,
		Time:        label,
	}, nil
}

func (c *Controller) patientName(id uint) string {
	for _, p := range c.patients {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}
