package services

import (
	"RealEstateAPI/models"
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrEmailTaken is returned when the storage-level uniqueness
	// constraint rejects a registration.
	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, user models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, userID string, user models.User) error
}

// FirestoreUserStore keeps users in the "users" collection. Email
// uniqueness is enforced by an index document in "emails" keyed by the
// address itself: tx.Create on an existing key fails the whole
// transaction with AlreadyExists, so two racing registrations cannot
// both commit.
type FirestoreUserStore struct {
	Client *firestore.Client
}

func NewFirestoreUserStore(client *firestore.Client) *FirestoreUserStore {
	return &FirestoreUserStore{Client: client}
}

func (s *FirestoreUserStore) Create(ctx context.Context, user models.User) (string, error) {
	docRef := s.Client.Collection("users").NewDoc()
	emailRef := s.Client.Collection("emails").Doc(user.Email)

	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(emailRef, map[string]interface{}{"userId": docRef.ID}); err != nil {
			return err
		}
		return tx.Create(docRef, user)
	})
	if status.Code(err) == codes.AlreadyExists {
		return "", ErrEmailTaken
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return "", err
	}
	return docRef.ID, nil
}

func (s *FirestoreUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := s.Client.Collection("users").
		Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		logger.Error().Err(err).Msg("Error querying user by email")
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := docs[0].DataTo(&user); err != nil {
		logger.Error().Err(err).Msg("Error parsing user data")
		return nil, err
	}
	user.ID = docs[0].Ref.ID
	return &user, nil
}

func (s *FirestoreUserStore) Get(ctx context.Context, userID string) (*models.User, error) {
	doc, err := s.Client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error fetching user")
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		logger.Error().Err(err).Msg("Error parsing user data")
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (s *FirestoreUserStore) Update(ctx context.Context, userID string, user models.User) error {
	if _, err := s.Client.Collection("users").Doc(userID).Set(ctx, user); err != nil {
		logger.Error().Err(err).Msg("Error updating user")
		return err
	}
	return nil
}
