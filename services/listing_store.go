package services

import (
	"RealEstateAPI/models"
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingStore persists listing documents.
type ListingStore interface {
	Create(ctx context.Context, listing models.Listing) (string, error)
	Get(ctx context.Context, listingID string) (*models.Listing, error)
	List(ctx context.Context, ownerID string) ([]models.Listing, error)
	Set(ctx context.Context, listingID string, listing models.Listing) error
	Delete(ctx context.Context, listingID string) error
}

// FirestoreListingStore keeps listings in the "listings" collection.
type FirestoreListingStore struct {
	Client *firestore.Client
}

func NewFirestoreListingStore(client *firestore.Client) *FirestoreListingStore {
	return &FirestoreListingStore{Client: client}
}

func (s *FirestoreListingStore) Create(ctx context.Context, listing models.Listing) (string, error) {
	docRef := s.Client.Collection("listings").NewDoc()
	if _, err := docRef.Create(ctx, listing); err != nil {
		logger.Error().Err(err).Msg("Error creating listing")
		return "", err
	}
	return docRef.ID, nil
}

func (s *FirestoreListingStore) Get(ctx context.Context, listingID string) (*models.Listing, error) {
	doc, err := s.Client.Collection("listings").Doc(listingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrListingNotFound
		}
		logger.Error().Err(err).Msg("Error fetching listing")
		return nil, err
	}

	var listing models.Listing
	if err := doc.DataTo(&listing); err != nil {
		logger.Error().Err(err).Msg("Error parsing listing data")
		return nil, err
	}
	listing.ID = doc.Ref.ID
	return &listing, nil
}

func (s *FirestoreListingStore) List(ctx context.Context, ownerID string) ([]models.Listing, error) {
	var query firestore.Query
	if ownerID != "" {
		query = s.Client.Collection("listings").Where("userId", "==", ownerID)
	} else {
		query = s.Client.Collection("listings").Query
	}

	iter := query.Documents(ctx)
	listings := []models.Listing{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error().Err(err).Msg("Error fetching listings")
			return nil, err
		}

		var listing models.Listing
		if err := doc.DataTo(&listing); err != nil {
			logger.Error().Err(err).Msg("Error parsing listing data")
			return nil, err
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *FirestoreListingStore) Set(ctx context.Context, listingID string, listing models.Listing) error {
	if _, err := s.Client.Collection("listings").Doc(listingID).Set(ctx, listing); err != nil {
		logger.Error().Err(err).Msg("Error updating listing")
		return err
	}
	return nil
}

func (s *FirestoreListingStore) Delete(ctx context.Context, listingID string) error {
	if _, err := s.Client.Collection("listings").Doc(listingID).Delete(ctx); err != nil {
		logger.Error().Err(err).Msg("Error deleting listing")
		return err
	}
	return nil
}
