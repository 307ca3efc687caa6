package models

import (
	"RealEstateAPI/utils"
	"net/http"
	"time"
)

// DefaultProfileImage is used when a user registers without uploading one.
const DefaultProfileImage = "https://res.cloudinary.com/dm9ssuwao/image/upload/v1721759021/default-profile.png"

type User struct {
	ID           string    `firestore:"-" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Email        string    `firestore:"email" json:"email"`
	Password     string    `firestore:"password" json:"-"` // bcrypt hash, never serialized
	ProfileImage string    `firestore:"profileImage" json:"profileImage"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// PublicProfile is the owner subset embedded in listing responses.
type PublicProfile struct {
	ID           string `firestore:"-" json:"id"`
	Name         string `firestore:"name" json:"name"`
	Email        string `firestore:"email" json:"email"`
	ProfileImage string `firestore:"profileImage" json:"profileImage"`
}

// Public strips the credential fields from a user record.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name.required":     "Name is a required field",
	"Name.min":          "Name should have a minimum length of 3",
	"Name.max":          "Name should have a maximum length of 30",
	"Email.required":    "Email is a required field",
	"Email.email":       "Email must be a valid email",
	"Password.required": "Password is a required field",
	"Password.min":      "Password must be at least 6 characters long",
}

func (r *RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewCustomError(http.StatusBadRequest, firstViolation(err, registerMessages))
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Email.required":    "Email is a required field",
	"Email.email":       "Email must be a valid email",
	"Password.required": "Password cannot be an empty field",
}

func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewCustomError(http.StatusBadRequest, firstViolation(err, loginMessages))
	}
	return nil
}

// UpdateProfileRequest is a partial patch; empty fields keep their
// stored values. The profile image travels as a multipart file, not here.
type UpdateProfileRequest struct {
	Name     string `form:"name" validate:"omitempty,min=3,max=30"`
	Email    string `form:"email" validate:"omitempty,email"`
	Password string `form:"password" validate:"omitempty,min=6"`
}

var updateProfileMessages = map[string]string{
	"Name.min":     "Name should have a minimum length of 3",
	"Name.max":     "Name should have a maximum length of 30",
	"Email.email":  "Email must be a valid email",
	"Password.min": "Password must be at least 6 characters long",
}

func (r *UpdateProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewCustomError(http.StatusBadRequest, firstViolation(err, updateProfileMessages))
	}
	return nil
}

// AuthResponse is returned by register, login and profile update.
type AuthResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	Token        string `json:"token"`
}
