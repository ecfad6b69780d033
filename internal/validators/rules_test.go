package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsDisplayName(t *testing.T) {
	require.True(t, IsDisplayName("Administrator Account One"))
	require.True(t, IsDisplayName("abcdefghij0123456789"))
	require.False(t, IsDisplayName("Too Short"))
	require.False(t, IsDisplayName("Name With Punctuation!!!"))
	require.False(t, IsDisplayName("x234567890123456789012345678901234567890123456789012345678901"))
}

func TestIsStrongPassword(t *testing.T) {
	require.True(t, IsStrongPassword("Secret!23"))
	require.True(t, IsStrongPassword("AdminPass1!"))
	require.False(t, IsStrongPassword("secret!23"), "no uppercase")
	require.False(t, IsStrongPassword("Secret123"), "no symbol")
	require.False(t, IsStrongPassword("S!x"), "too short")
	require.False(t, IsStrongPassword("VeryLongPassword!123"), "too long")
}

func TestRegister_Tags(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type signup struct {
		Name     string `validate:"required,display_name"`
		Password string `validate:"required,strong_password"`
	}

	require.NoError(t, v.Struct(signup{Name: "Rating User Number One", Password: "Passw0rd!"}))
	require.Error(t, v.Struct(signup{Name: "short", Password: "Passw0rd!"}))
	require.Error(t, v.Struct(signup{Name: "Rating User Number One", Password: "password"}))
}
