package localstore

import (
	"context"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/message"
)

type messageRepository struct {
	messages collection[message.Message]
}

var _ message.Repository = (*messageRepository)(nil) // interface compliance check

func NewMessageRepository(db *DB) message.Repository {
	return &messageRepository{
		messages: newCollection(db, core.KeyMessages, func(m message.Message) string { return m.ID }),
	}
}

func (repo *messageRepository) CreateMessages(ctx context.Context, msgs ...message.Message) error {
	return repo.messages.insert(ctx, msgs...)
}

func (repo *messageRepository) QueryMessages(ctx context.Context, filter message.QueryFilter) ([]message.Message, error) {
	return repo.messages.filter(ctx, filter.Match)
}
