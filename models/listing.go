package models

import (
	"RealEstateAPI/utils"
	"net/http"
	"time"
)

// ListingImage is a reference to an externalized asset: the public id
// is what the asset host needs for deletion, the URL is what clients
// render.
type ListingImage struct {
	PublicID string `firestore:"publicId" json:"public_id"`
	URL      string `firestore:"url" json:"url"`
}

type Listing struct {
	ID          string         `firestore:"-" json:"id"`
	UserID      string         `firestore:"userId" json:"userId"`
	Title       string         `firestore:"title" json:"title"`
	Price       float64        `firestore:"price" json:"price"`
	Location    string         `firestore:"location" json:"location"`
	BHK         int            `firestore:"bhk" json:"bhk"`
	Sqft        float64        `firestore:"sqft" json:"sqft"`
	Description string         `firestore:"description" json:"description"`
	Category    string         `firestore:"category" json:"category"`
	Images      []ListingImage `firestore:"images" json:"images"`
	CreatedAt   time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `firestore:"updatedAt" json:"updatedAt"`

	// Owner is populated on reads from the users collection; it is
	// never written back to the listing document.
	Owner *PublicProfile `firestore:"-" json:"user,omitempty"`
}

// ListingRequest carries the multipart form fields of a create or
// update call. Images arrive separately as files under the "images"
// field.
type ListingRequest struct {
	Title       string  `form:"title" validate:"required,min=5,max=100"`
	Price       float64 `form:"price" validate:"gte=0"`
	Location    string  `form:"location" validate:"required,min=3"`
	BHK         int     `form:"bhk" validate:"required,min=1"`
	Sqft        float64 `form:"sqft" validate:"required,min=100"`
	Description string  `form:"description" validate:"required,min=20,max=1000"`
	Category    string  `form:"category" validate:"required,oneof=Sell Rent"`
}

var listingMessages = map[string]string{
	"Title.required":       "Please add a title for the listing",
	"Title.min":            "Title should have a minimum length of 5",
	"Title.max":            "Title cannot be more than 100 characters",
	"Price.gte":            "Price cannot be negative",
	"Location.required":    "Please add a location",
	"Location.min":         "Location should have a minimum length of 3",
	"BHK.required":         "BHK must be at least 1",
	"BHK.min":              "BHK must be at least 1",
	"Sqft.required":        "Square footage must be at least 100",
	"Sqft.min":             "Square footage must be at least 100",
	"Description.required": "Please add a description",
	"Description.min":      "Description should have a minimum length of 20",
	"Description.max":      "Description cannot be more than 1000 characters",
	"Category.required":    "Please specify category (Sell/Rent)",
	"Category.oneof":       "Category must be either Sell or Rent",
}

func (r *ListingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewCustomError(http.StatusBadRequest, firstViolation(err, listingMessages))
	}
	return nil
}
