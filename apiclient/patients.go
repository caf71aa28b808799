package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListPatients(ctx context.Context, query string) Result[[]Patient] {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}
	return do[[]Patient](c, ctx, http.MethodGet, "patients/", q, nil,
		"Failed to load patients.")
}

func (c *Client) GetPatient(ctx context.Context, id uint) Result[Patient] {
	return do[Patient](c, ctx, http.MethodGet, fmt.Sprintf("patients/%d/", id), nil, nil,
		"Failed to load patient.")
}

func (c *Client) CreatePatient(ctx context.Context, in PatientInput) Result[Patient] {
	return do[Patient](c, ctx, http.MethodPost, "patients/", nil, in,
		"Failed to save patient.")
}

func (c *Client) UpdatePatient(ctx context.Context, id uint, in PatientInput) Result[Patient] {
	return do[Patient](c, ctx, http.MethodPut, fmt.Sprintf("patients/%d/", id), nil, in,
		"Failed to save patient.")
}

func (c *Client) DeletePatient(ctx context.Context, id uint) Result[struct{}] {
	return do[struct{}](c, ctx, http.MethodDelete, fmt.Sprintf("patients/%d/", id), nil, nil,
		"Failed to delete patient.")
}

// --------- Visit history ---------

func (c *Client) ListVisits(ctx context.Context, patientID uint) Result[[]Visit] {
	return do[[]Visit](c, ctx, http.MethodGet, fmt.Sprintf("patients/%d/visits/", patientID), nil, nil,
		"Failed to load visit history.")
}

func (c *Client) CreateVisit(ctx context.Context, patientID uint, in Visit) Result[Visit] {
	return do[Visit](c, ctx, http.MethodPost, fmt.Sprintf("patients/%d/visits/", patientID), nil, in,
		"Failed to save visit.")
}

func (c *Client) ReplaceVisit(ctx context.Context, patientID uint, in Visit) Result[Visit] {
	return do[Visit](c, ctx, http.MethodPut,
		fmt.Sprintf("patients/%d/visits/%d/", patientID, in.ID), nil, in,
		"Failed to save visit.")
}
