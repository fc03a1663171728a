package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/parthkumar123/backend/internal/config"
	"github.com/parthkumar123/backend/internal/dtos"
	"github.com/parthkumar123/backend/internal/middleware"
	"github.com/parthkumar123/backend/internal/services"
	"github.com/parthkumar123/backend/internal/utils"
)

type AuthController struct {
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthController(authService services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

var authValidate = validator.New()

// validationMessage flattens validator errors into one message naming
// every violated field rule.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation error"
	}

	rules := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			rules = append(rules, fmt.Sprintf("%s is required", field))
		case "email":
			rules = append(rules, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			rules = append(rules, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			rules = append(rules, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			rules = append(rules, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			rules = append(rules, fmt.Sprintf("%s is invalid", field))
		}
	}
	return "Validation failed: " + strings.Join(rules, "; ")
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, "Invalid payload", !c.cfg.IsProduction(), err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, validationMessage(err), !c.cfg.IsProduction(), err,
		)
		return
	}

	if err := c.authService.Signup(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.RespondError(
				w, http.StatusConflict,
				"Email already exists. Please choose a different email.", !c.cfg.IsProduction(), err,
			)
			return
		}
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while registering the user.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.SignupResponse{
		Status:  utils.StatusSuccess,
		Message: "User registered successfully.",
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, "Invalid payload", !c.cfg.IsProduction(), err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondError(
			w, http.StatusBadRequest, validationMessage(err), !c.cfg.IsProduction(), err,
		)
		return
	}

	token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondError(
				w, http.StatusUnauthorized,
				"Invalid email or password. Please try again.", !c.cfg.IsProduction(),
			)
			return
		}
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while logging in the user.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Status: utils.StatusOk,
		Token:  token,
	})
}

// Logout blacklists whatever bearer string the client presents. No
// signature or ownership check first; blacklisting garbage is a
// harmless no-op.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.ExtractBearerToken(r)
	if !ok {
		utils.RespondError(
			w, http.StatusBadRequest, "Token not found", !c.cfg.IsProduction(),
		)
		return
	}

	if err := c.authService.Logout(r.Context(), token); err != nil {
		utils.RespondError(
			w, http.StatusInternalServerError,
			"An error occurred while logging out the user.", !c.cfg.IsProduction(), err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{
		Status:  utils.StatusSuccess,
		Message: "Logout successful",
	})
}
