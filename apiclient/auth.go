package apiclient

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and, on success, installs the returned token on
// the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) Result[LoginResponse] {
	res := do[LoginResponse](c, ctx, http.MethodPost, "login/", nil, loginRequest{
		Email:    email,
		Password: password,
	}, "Login failed.")

	if res.Success {
		c.SetToken(res.Data.Token)
	}

	return res
}
