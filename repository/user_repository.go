package repository

import (
	"context"
	"errors"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/docstore"
)

// ErrUserExists is returned by Create when the email key is taken.
var ErrUserExists = errors.New("user already exists")

const usersCollection = "users"

// UserRepository stores users keyed by email, which makes the email
// unique at the storage layer.
type UserRepository struct{ Store docstore.Store }

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{Store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, exists, err := r.Store.Get(ctx, usersCollection, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}
	return r.Store.Set(ctx, usersCollection, user.Email, user.Doc())
}

// FindByEmail queries the email field and takes the first hit, matching
// the legacy read path; docstore.ErrNoDocument if nothing matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.Store.FindByField(ctx, usersCollection, "email", email)
	if err != nil {
		return nil, err
	}
	return entity.UserFromDoc(doc), nil
}
