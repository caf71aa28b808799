package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListAppointments(ctx context.Context, filter AppointmentFilter) Result[[]Appointment] {
	q := url.Values{}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}
	if filter.Doctor != 0 {
		q.Set("doctor", strconv.FormatUint(uint64(filter.Doctor), 10))
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}

	return do[[]Appointment](c, ctx, http.MethodGet, "appointments/", q, nil,
		"Failed to load appointments.")
}

func (c *Client) CreateAppointment(ctx context.Context, in AppointmentInput) Result[Appointment] {
	return do[Appointment](c, ctx, http.MethodPost, "appointments/", nil, in,
		"Failed to book appointment.")
}

func (c *Client) UpdateAppointment(ctx context.Context, id uint, patch AppointmentPatch) Result[Appointment] {
	return do[Appointment](c, ctx, http.MethodPatch, fmt.Sprintf("appointments/%d/", id), nil, patch,
		"Failed to update appointment.")
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) Result[struct{}] {
	return do[struct{}](c, ctx, http.MethodDelete, fmt.Sprintf("appointments/%d/", id), nil, nil,
		"Failed to delete appointment.")
}
