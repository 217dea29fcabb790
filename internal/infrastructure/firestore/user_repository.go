package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

const usersCollection = "apigee-marketplace-users"

// userRepository implements domain.UserRepository on Firestore. User
// documents are keyed by email.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new user repository.
func NewUserRepository(client *firestore.Client) domain.UserRepository {
	return &userRepository{client: client}
}

// GetByEmail reads the user document keyed by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.NewNotFoundError("user", email)
		}
		return nil, fmt.Errorf("failed to get user %q: %w", email, err)
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user %q: %w", email, err)
	}
	return &user, nil
}
