package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("buyer1"))
	require.NoError(t, ValidateUsername("some_user_42"))

	require.Error(t, ValidateUsername("ab"))
	require.Error(t, ValidateUsername("has spaces"))
	require.Error(t, ValidateUsername("has-dash"))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("password123"))
	require.Error(t, ValidatePassword("short"))
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("buyer1@example.com"))
	require.Error(t, ValidateEmail("not-an-email"))
	require.Error(t, ValidateEmail("a@b"))
}

func TestValidateItemType(t *testing.T) {
	require.NoError(t, ValidateItemType("auction"))
	require.NoError(t, ValidateItemType("buy-it-now"))
	require.Error(t, ValidateItemType("raffle"))
	require.Error(t, ValidateItemType(""))
}

func TestValidatePrice(t *testing.T) {
	require.NoError(t, ValidatePrice(1))
	require.Error(t, ValidatePrice(0))
	require.Error(t, ValidatePrice(-10))
}
