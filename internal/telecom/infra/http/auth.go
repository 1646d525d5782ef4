package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/simctl/internal/telecom/app/backend"
	pkghttp "github.com/klwxsrx/simctl/pkg/http"
)

var (
	loginRoute          = pkghttp.Route{Method: http.MethodPost, URL: "api/auth/login"}
	registerRoute       = pkghttp.Route{Method: http.MethodPost, URL: "api/auth/register"}
	changePasswordRoute = pkghttp.Route{Method: http.MethodPost, URL: "api/auth/login/change-password"}
)

type (
	authService struct {
		client pkghttp.Client
	}

	loginIn struct {
		AadhaarNo string `json:"aadhaarNo"`
		Password  string `json:"password"`
	}
)

func NewAuthService(client pkghttp.Client) backend.AuthService {
	return authService{client: client}
}

func (s authService) Login(ctx context.Context, aadhaarNo, password string) (backend.LoginResult, error) {
	req := s.client.NewRequest(ctx, loginRoute).
		SetJSONBody(loginIn{AadhaarNo: aadhaarNo, Password: password})
	return call(req, pkghttp.JSONBody[backend.LoginResult]())
}

func (s authService) Register(ctx context.Context, registration backend.Registration) error {
	req := s.client.NewRequest(ctx, registerRoute).SetJSONBody(registration)
	_, err := call(req, noContent())
	return err
}

func (s authService) ChangePassword(ctx context.Context, change backend.PasswordChange) error {
	req := s.client.NewRequest(ctx, changePasswordRoute).SetJSONBody(change)
	_, err := call(req, noContent())
	return err
}
