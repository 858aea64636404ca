package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if err := validate.Struct(r); err != nil {
		return authFieldError(err)
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if err := validate.Struct(r); err != nil {
		return authFieldError(err)
	}
	return nil
}

func authFieldError(err error) error {
	if fields, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fields {
			switch fe.Field() {
			case "Name":
				return echo.NewHTTPError(http.StatusBadRequest, "name is required")
			case "Email":
				return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
			case "Password":
				return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
			}
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
}
