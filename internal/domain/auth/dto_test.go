package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "jdoe",
			Password:        "password123",
			ConfirmPassword: "password123",
			Role:            "Manager",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty role defaults to Employee", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "jdoe",
			Password:        "password123",
			ConfirmPassword: "password123",
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, "Employee", req.Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "jdoe",
			Password:        "password123",
			ConfirmPassword: "password123",
			Role:            "Superuser",
		}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "role")
	})

	t.Run("short password rejected", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "jdoe",
			Password:        "short",
			ConfirmPassword: "short",
		}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "password")
	})

	t.Run("password mismatch rejected", func(t *testing.T) {
		req := RegisterRequest{
			Username:        "jdoe",
			Password:        "password123",
			ConfirmPassword: "password124",
		}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "confirm_password")
	})
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Username: "jdoe", Password: "password123"}
	assert.NoError(t, valid.Validate())

	empty := LoginRequest{}
	assert.Error(t, empty.Validate())
}
