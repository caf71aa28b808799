package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListDoctors(ctx context.Context) Result[[]Doctor] {
	return do[[]Doctor](c, ctx, http.MethodGet, "doctors/", nil, nil,
		"Failed to load doctors.")
}

func (c *Client) GetDoctor(ctx context.Context, id uint) Result[Doctor] {
	return do[Doctor](c, ctx, http.MethodGet, fmt.Sprintf("doctors/%d/", id), nil, nil,
		"Failed to load doctor.")
}

func (c *Client) ListServices(ctx context.Context) Result[[]Service] {
	return do[[]Service](c, ctx, http.MethodGet, "services/", nil, nil,
		"Failed to load services.")
}
