package services

import (
	"RealEstateAPI/config/database"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"
)

// UserResolver looks up the public side of a user; *AuthService
// satisfies it.
type UserResolver interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// ImageExternalizer is the slice of ImageService the listing lifecycle
// depends on.
type ImageExternalizer interface {
	UploadBatch(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]models.ListingImage, error)
	DeleteAll(ctx context.Context, images []models.ListingImage)
}

type ListingService struct {
	Store  ListingStore
	Images ImageExternalizer
	Users  UserResolver
}

// NewListingService initializes a new ListingService
func NewListingService() *ListingService {
	return &ListingService{
		Store:  NewFirestoreListingStore(database.GetFirestoreClient()),
		Images: NewImageService(),
		Users:  NewAuthService(),
	}
}

// CheckImageCount enforces the 1-4 image bound before any upload is
// attempted, so a rejected request never leaves partial uploads behind.
func CheckImageCount(count int, required bool) error {
	if count == 0 {
		if required {
			return utils.NewCustomError(http.StatusBadRequest, "At least one image is required for a listing.")
		}
		return nil
	}
	if count < MinListingImages || count > MaxListingImages {
		return utils.NewCustomError(http.StatusBadRequest, "A listing can have at most 4 images")
	}
	return nil
}

// CreateListing externalizes the images and persists the listing in a
// single document write. All uploads must succeed before anything is
// committed; a mid-batch failure rolls the batch back.
func (s *ListingService) CreateListing(ctx context.Context, userID string, req models.ListingRequest, files []*multipart.FileHeader) (*models.Listing, error) {
	if err := CheckImageCount(len(files), true); err != nil {
		return nil, err
	}

	images, err := s.Images.UploadBatch(ctx, files)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	listing := models.Listing{
		UserID:      userID,
		Title:       req.Title,
		Price:       req.Price,
		Location:    req.Location,
		BHK:         req.BHK,
		Sqft:        req.Sqft,
		Description: req.Description,
		Category:    req.Category,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	listingID, err := s.Store.Create(ctx, listing)
	if err != nil {
		// The document never committed, so the freshly uploaded
		// assets would be orphaned on the external host.
		s.Images.DeleteAll(ctx, images)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create listing")
	}
	listing.ID = listingID

	s.attachOwner(ctx, &listing)
	return &listing, nil
}

// GetAllListings returns every listing, optionally filtered by owner
func (s *ListingService) GetAllListings(ctx context.Context, ownerID string) ([]models.Listing, error) {
	listings, err := s.Store.List(ctx, ownerID)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch listings")
	}

	// Resolve each distinct owner once and map back
	ownerIDs := make(map[string]struct{})
	for _, listing := range listings {
		if listing.UserID != "" {
			ownerIDs[listing.UserID] = struct{}{}
		}
	}
	owners := make(map[string]models.PublicProfile)
	for ownerID := range ownerIDs {
		user, err := s.Users.GetUserByID(ctx, ownerID)
		if err != nil {
			logger.Warn().Str("userId", ownerID).Msg("Listing owner not resolvable")
			continue
		}
		owners[ownerID] = user.Public()
	}
	for i := range listings {
		if owner, exists := owners[listings[i].UserID]; exists {
			profile := owner
			listings[i].Owner = &profile
		}
	}

	return listings, nil
}

// GetListingByID returns a single listing enriched with its owner
func (s *ListingService) GetListingByID(ctx context.Context, listingID string) (*models.Listing, error) {
	listing, err := s.loadListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	s.attachOwner(ctx, listing)
	return listing, nil
}

// UpdateListing replaces a listing's fields after the owner check. If
// new images are supplied they are uploaded first and the old ones are
// deleted only after every new upload succeeded, so a partial failure
// never leaves the listing without images.
func (s *ListingService) UpdateListing(ctx context.Context, userID, listingID string, req models.ListingRequest, files []*multipart.FileHeader) (*models.Listing, error) {
	listing, err := s.loadListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	// Owner check happens strictly before any mutation or upload
	if listing.UserID != userID {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Not authorized to update this listing")
	}

	if err := CheckImageCount(len(files), false); err != nil {
		return nil, err
	}

	images := listing.Images
	if len(files) > 0 {
		newImages, err := s.Images.UploadBatch(ctx, files)
		if err != nil {
			return nil, err
		}
		// Only now is it safe to drop the old assets
		s.Images.DeleteAll(ctx, listing.Images)
		images = newImages
	}

	listing.Title = req.Title
	listing.Price = req.Price
	listing.Location = req.Location
	listing.BHK = req.BHK
	listing.Sqft = req.Sqft
	listing.Description = req.Description
	listing.Category = req.Category
	listing.Images = images
	listing.UpdatedAt = time.Now()

	if err := s.Store.Set(ctx, listingID, *listing); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update listing")
	}

	s.attachOwner(ctx, listing)
	return listing, nil
}

// DeleteListing removes a listing and its externalized images. Asset
// deletion is best effort: a transient asset-host fault must not make
// a listing undeletable.
func (s *ListingService) DeleteListing(ctx context.Context, userID, listingID string) error {
	listing, err := s.loadListing(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.UserID != userID {
		return utils.NewCustomError(http.StatusUnauthorized, "Not authorized to delete this listing")
	}

	s.Images.DeleteAll(ctx, listing.Images)

	if err := s.Store.Delete(ctx, listingID); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete listing")
	}

	return nil
}

func (s *ListingService) loadListing(ctx context.Context, listingID string) (*models.Listing, error) {
	listing, err := s.Store.Get(ctx, listingID)
	if errors.Is(err, ErrListingNotFound) {
		return nil, utils.NewCustomError(http.StatusNotFound, "Listing not found")
	}
	if err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch listing")
	}
	return listing, nil
}

// attachOwner enriches a listing with the public profile of its owner.
// An unresolvable owner is logged and left nil rather than failing the
// read.
func (s *ListingService) attachOwner(ctx context.Context, listing *models.Listing) {
	user, err := s.Users.GetUserByID(ctx, listing.UserID)
	if err != nil {
		logger.Warn().Str("userId", listing.UserID).Msg("Listing owner not resolvable")
		return
	}
	profile := user.Public()
	listing.Owner = &profile
}
