package localstore

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
)

var errDuplicateID = errors.New("a record with this id already exists")

type userRepository struct {
	db    *DB
	users collection[user.User]
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{
		db:    db,
		users: newCollection(db, core.KeyUsers, func(u user.User) string { return u.ID }),
	}
}

// CreateUser checks the email and picks the id inside the locked cycle, so that two
// concurrent registrations can never both succeed with the same email.
func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := repo.users.mutate(ctx, func(raws []json.RawMessage) ([]json.RawMessage, error) {
		ids := make(map[string]bool, len(raws))
		for _, u := range repo.users.decode(raws) {
			if u.Email == usr.Email {
				return nil, user.ErrEmailExists
			}
			ids[u.ID] = true
		}

		if usr.ID == "" {
			n := repo.db.now().UnixMilli()
			for ids[strconv.FormatInt(n, 10)] {
				n++
			}
			usr.ID = strconv.FormatInt(n, 10)
		} else if ids[usr.ID] {
			return nil, errDuplicateID
		}

		raw, err := marshal(usr)
		if err != nil {
			return nil, errors.Wrap(err, "encoding user")
		}
		return append(raws, raw), nil
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	return repo.users.filter(ctx, filter.Match)
}

func (repo *userRepository) GetUser(ctx context.Context, filter user.GetFilter) (user.User, error) {
	if filter.ID != "" {
		usr, err := repo.users.find(ctx, filter.ID)
		return usr, notFound(err, user.ErrNotFound)
	}
	if filter.Email != "" {
		users, err := repo.users.filter(ctx, func(u user.User) bool { return u.Email == filter.Email })
		if err != nil {
			return user.User{}, err
		}
		if len(users) > 0 {
			return users[0], nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) SaveUser(ctx context.Context, usr user.User) (user.User, error) {
	if err := repo.users.save(ctx, usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) DeleteUsersByID(ctx context.Context, ids ...string) error {
	_, err := repo.users.delete(ctx, ids...)
	return err
}
