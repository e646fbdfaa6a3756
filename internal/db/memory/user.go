package db

import (
	"context"
	"time"

	"github.com/Lkoenig2121/ebay/internal/util"
)

type CreateUserParams struct {
	Username       string
	HashedPassword string
	Email          string
}

func (store *MemoryStore) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, taken := store.usersByName[arg.Username]; taken {
		return User{}, ErrUsernameExists
	}

	user := User{
		ID:             util.GenerateUserID(),
		Username:       arg.Username,
		HashedPassword: arg.HashedPassword,
		Email:          arg.Email,
		CreatedAt:      time.Now(),
	}
	store.users[user.ID] = user
	store.usersByName[user.Username] = user.ID

	return user, nil
}

func (store *MemoryStore) GetUserByID(ctx context.Context, id string) (User, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	user, ok := store.users[id]
	if !ok {
		return User{}, ErrRecordNotFound
	}
	return user, nil
}

func (store *MemoryStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.usersByName[username]
	if !ok {
		return User{}, ErrRecordNotFound
	}
	return store.users[id], nil
}
