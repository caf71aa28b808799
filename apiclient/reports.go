package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func periodQuery(period string) url.Values {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	return q
}

func (c *Client) Analytics(ctx context.Context, period string) Result[AnalyticsReport] {
	return do[AnalyticsReport](c, ctx, http.MethodGet, "reports/analytics/", periodQuery(period), nil,
		"Failed to load analytics.")
}

func (c *Client) AppointmentsReport(ctx context.Context, period string, doctorID uint) Result[AppointmentsReport] {
	q := periodQuery(period)
	if doctorID != 0 {
		q.Set("doctor_id", strconv.FormatUint(uint64(doctorID), 10))
	}
	return do[AppointmentsReport](c, ctx, http.MethodGet, "reports/appointments/", q, nil,
		"Failed to load appointment report.")
}

func (c *Client) InventoryReport(ctx context.Context) Result[InventoryReport] {
	return do[InventoryReport](c, ctx, http.MethodGet, "reports/inventory/", nil, nil,
		"Failed to load inventory report.")
}

func (c *Client) PatientsReport(ctx context.Context, period string) Result[PatientsReport] {
	return do[PatientsReport](c, ctx, http.MethodGet, "reports/patients/", periodQuery(period), nil,
		"Failed to load patient report.")
}
