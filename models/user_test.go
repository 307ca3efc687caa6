package models

import (
	"RealEstateAPI/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name    string
		req     RegisterRequest
		message string
	}{
		{"missing name", RegisterRequest{Email: "ann@x.com", Password: "secret1"}, "Name is a required field"},
		{"short name", RegisterRequest{Name: "An", Email: "ann@x.com", Password: "secret1"}, "Name should have a minimum length of 3"},
		{"bad email", RegisterRequest{Name: "Ann", Email: "not-an-email", Password: "secret1"}, "Email must be a valid email"},
		{"missing email", RegisterRequest{Name: "Ann", Password: "secret1"}, "Email is a required field"},
		{"short password", RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "abc"}, "Password must be at least 6 characters long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)

			customErr, ok := err.(*utils.CustomError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
			assert.Equal(t, tc.message, customErr.Message)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ann@x.com", Password: "secret1"}
	assert.NoError(t, valid.Validate())

	missingPassword := LoginRequest{Email: "ann@x.com"}
	err := missingPassword.Validate()
	require.Error(t, err)
	assert.Equal(t, "Password cannot be an empty field", err.(*utils.CustomError).Message)
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	// Everything optional: an empty patch is valid
	empty := UpdateProfileRequest{}
	assert.NoError(t, empty.Validate())

	partial := UpdateProfileRequest{Name: "Annabel"}
	assert.NoError(t, partial.Validate())

	badEmail := UpdateProfileRequest{Email: "nope"}
	err := badEmail.Validate()
	require.Error(t, err)
	assert.Equal(t, "Email must be a valid email", err.(*utils.CustomError).Message)

	shortPassword := UpdateProfileRequest{Password: "abc"}
	assert.Error(t, shortPassword.Validate())
}

func TestUser_PublicExcludesCredentials(t *testing.T) {
	user := User{
		ID:           "u1",
		Name:         "Ann",
		Email:        "ann@x.com",
		Password:     "$2a$10$hash",
		ProfileImage: DefaultProfileImage,
	}

	public := user.Public()
	assert.Equal(t, "u1", public.ID)
	assert.Equal(t, "Ann", public.Name)
	assert.Equal(t, "ann@x.com", public.Email)
	assert.Equal(t, DefaultProfileImage, public.ProfileImage)
}
