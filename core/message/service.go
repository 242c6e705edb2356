package message

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
)

var (
	errChannelNotAllowed = "this recipient is not available for your role"
	errNoSupervisor      = "you have no active supervisor"
	errNotYourStudent    = "this student is not supervised by you"
	errNotAColleague     = "this user is not a staff member"
	errRecipientRequired = "this field is required"
	errNoRecipients      = "there is nobody to send this message to"
)

type (
	Repository interface {
		CreateMessages(ctx context.Context, msgs ...Message) error
		QueryMessages(ctx context.Context, filter QueryFilter) ([]Message, error)
	}

	UserFinder interface {
		GetByID(ctx context.Context, id string) (user.User, error)
		Filter(ctx context.Context, filter user.QueryFilter) ([]user.User, error)
	}

	SupervisionFinder interface {
		StudentsBySupervisor(ctx context.Context, supervisorID string) ([]string, error)
		SupervisorsOf(ctx context.Context, studentID string) ([]string, error)
	}

	Service struct {
		repo         Repository
		users        UserFinder
		supervisions SupervisionFinder
		mailSvc      core.EmailService
		validate     *validator.Validate
	}
)

func NewService(
	repo Repository,
	users UserFinder,
	supervisions SupervisionFinder,
	mailSvc core.EmailService,
	validate *validator.Validate,
) *Service {
	return &Service{
		repo:         repo,
		users:        users,
		supervisions: supervisions,
		mailSvc:      mailSvc,
		validate:     validate,
	}
}

// Send delivers nm from sender to every recipient its channel resolves to,
// stores one Message per recipient and emails each of them.
func (svc *Service) Send(ctx context.Context, sender user.User, nm NewMessage) ([]Message, error) {
	if err := nm.Validate(svc.validate); err != nil {
		return nil, err
	}
	if !isAllowed(sender.Role, nm.Channel) {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "recipient", Error: errChannelNotAllowed})
	}

	recipients, err := svc.resolve(ctx, sender, nm)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "recipient", Error: errNoRecipients})
	}

	now := time.Now().UTC()
	msgs := make([]Message, 0, len(recipients))
	emails := make([]*core.EmailMessage, 0, len(recipients))
	for _, rcpt := range recipients {
		msgs = append(msgs, Message{
			ID:          uuid.NewString(),
			SenderID:    sender.ID,
			RecipientID: rcpt.ID,
			Channel:     nm.Channel,
			Subject:     nm.Subject,
			Body:        nm.Body,
			CreatedAt:   now,
		})
		emails = append(emails, &core.EmailMessage{
			To:      []mail.Address{{Name: rcpt.Name, Address: rcpt.Email}},
			Subject: nm.Subject,
			BodyStr: fmt.Sprintf("%s\r\n\r\n-- \r\nSent by %s <%s>", nm.Body, sender.Name, sender.Email),
		})
	}
	if err = svc.repo.CreateMessages(ctx, msgs...); err != nil {
		return nil, errors.Wrap(err, "storing messages")
	}
	svc.mailSvc.SendMessages(emails...)
	return msgs, nil
}

func (svc *Service) resolve(ctx context.Context, sender user.User, nm NewMessage) ([]user.User, error) {
	var (
		rcpts []user.User
		err   error
	)
	switch nm.Channel {
	case ChannelSupervisor:
		ids, sErr := svc.supervisions.SupervisorsOf(ctx, sender.ID)
		if sErr != nil {
			return nil, errors.Wrap(sErr, "finding supervisors")
		}
		if len(ids) == 0 {
			return nil, core.NewValidationError(nil, core.FieldError{Field: "recipient", Error: errNoSupervisor})
		}
		rcpts, err = svc.users.Filter(ctx, user.QueryFilter{IDs: ids})
	case ChannelAdmin, ChannelSupport:
		rcpts, err = svc.users.Filter(ctx, user.QueryFilter{Roles: []string{user.RoleAdmin}})
	case ChannelAllStaff:
		rcpts, err = svc.users.Filter(ctx, user.QueryFilter{Roles: []string{user.RoleStaff}})
	case ChannelAllStudents:
		rcpts, err = svc.users.Filter(ctx, user.QueryFilter{Roles: []string{user.RoleStudent}})
	case ChannelStudent, ChannelColleague, ChannelIndividual:
		if nm.RecipientID == "" {
			return nil, core.NewValidationError(nil, core.FieldError{Field: "recipientId", Error: errRecipientRequired})
		}
		rcpt, gErr := svc.users.GetByID(ctx, nm.RecipientID)
		if gErr != nil {
			if errors.Is(gErr, user.ErrNotFound) {
				return nil, core.NewValidationError(gErr, core.FieldError{Field: "recipientId", Error: gErr.Error()})
			}
			return nil, errors.Wrap(gErr, "finding recipient")
		}
		if err = svc.checkDirect(ctx, sender, rcpt, nm.Channel); err != nil {
			return nil, err
		}
		rcpts = []user.User{rcpt}
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding recipients")
	}

	// never deliver to self
	filtered := rcpts[:0]
	for _, r := range rcpts {
		if r.ID != sender.ID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (svc *Service) checkDirect(ctx context.Context, sender, rcpt user.User, channel string) error {
	switch channel {
	case ChannelStudent:
		ids, err := svc.supervisions.StudentsBySupervisor(ctx, sender.ID)
		if err != nil {
			return errors.Wrap(err, "finding supervised students")
		}
		for _, id := range ids {
			if id == rcpt.ID {
				return nil
			}
		}
		return core.NewValidationError(nil, core.FieldError{Field: "recipientId", Error: errNotYourStudent})
	case ChannelColleague:
		if !rcpt.IsStaff() {
			return core.NewValidationError(nil, core.FieldError{Field: "recipientId", Error: errNotAColleague})
		}
	}
	return nil
}

// Inbox returns the messages received by userID.
func (svc *Service) Inbox(ctx context.Context, userID string) ([]Message, error) {
	return svc.repo.QueryMessages(ctx, QueryFilter{RecipientID: userID})
}

// Sent returns the messages sent by userID.
func (svc *Service) Sent(ctx context.Context, userID string) ([]Message, error) {
	return svc.repo.QueryMessages(ctx, QueryFilter{SenderID: userID})
}
