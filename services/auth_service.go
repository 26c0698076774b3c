package services

import (
	"context"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupData struct {
	Email                 string `json:"email"`
	Password              string `json:"password"`
	RestaurantName        string `json:"restaurant_name"`
	RestaurantAddress     string `json:"restaurant_address,omitempty"`
	RestaurantPhone       string `json:"restaurant_phone,omitempty"`
	RestaurantEmail       string `json:"restaurant_email,omitempty"`
	RestaurantDescription string `json:"restaurant_description,omitempty"`
}

type AuthResponse struct {
	User         models.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
}

type AuthService struct {
	api *client.Client
}

func NewAuthService(api *client.Client) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, creds LoginCredentials) (AuthResponse, error) {
	var resp AuthResponse
	err := s.api.Post(ctx, client.EndpointLogin, creds, &resp)
	return resp, err
}

// Signup creates the first admin account of a fresh installation.
func (s *AuthService) Signup(ctx context.Context, data SignupData) (AuthResponse, error) {
	var resp AuthResponse
	err := s.api.Post(ctx, client.EndpointSignup, data, &resp)
	return resp, err
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.api.Post(ctx, client.EndpointLogout, nil, nil)
}

func (s *AuthService) UpdateProfile(ctx context.Context, patch models.UserPatch) (models.User, error) {
	var user models.User
	err := s.api.Put(ctx, client.EndpointProfile, patch, &user)
	return user, err
}

func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return s.api.Put(ctx, client.EndpointPassword, body, nil)
}
