package message

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
)

// Channels
const (
	// student
	ChannelSupervisor = "supervisor"
	ChannelSupport    = "support"

	// staff
	ChannelStudent   = "student"
	ChannelColleague = "colleague"

	// student & staff
	ChannelAdmin = "admin"

	// admin
	ChannelAllStaff    = "all-staff"
	ChannelAllStudents = "all-students"
	ChannelIndividual  = "individual"
)

type Channel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var channelsByRole = map[string][]Channel{
	user.RoleStudent: {
		{Value: ChannelSupervisor, Label: "My Supervisor"},
		{Value: ChannelAdmin, Label: "Administration"},
		{Value: ChannelSupport, Label: "Technical Support"},
	},
	user.RoleStaff: {
		{Value: ChannelStudent, Label: "Student"},
		{Value: ChannelColleague, Label: "Colleague"},
		{Value: ChannelAdmin, Label: "Administration"},
	},
	user.RoleAdmin: {
		{Value: ChannelAllStaff, Label: "All Staff"},
		{Value: ChannelAllStudents, Label: "All Students"},
		{Value: ChannelIndividual, Label: "Individual User"},
	},
}

// RecipientOptions lists the channels available to role.
func RecipientOptions(role string) []Channel {
	return channelsByRole[role]
}

func isAllowed(role, channel string) bool {
	for _, c := range channelsByRole[role] {
		if c.Value == channel {
			return true
		}
	}
	return false
}

// Message is one delivered copy of a message; a broadcast yields one Message per recipient.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Channel     string    `json:"channel"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewMessage struct {
	Channel     string `json:"recipient" validate:"required"`
	RecipientID string `json:"recipientId"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Body        string `json:"message" validate:"required,notblank"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.Channel = core.CleanString(nm.Channel, true /* lower */)
	nm.RecipientID = core.CleanString(nm.RecipientID)
	nm.Subject = core.CleanString(nm.Subject)
	nm.Body = core.CleanString(nm.Body)
	return validate.Struct(nm)
}

// QueryFilter applies AND on its non-empty fields.
type QueryFilter struct {
	SenderID    string
	RecipientID string
}

func (qf QueryFilter) Match(m Message) bool {
	return (qf.SenderID == "" || m.SenderID == qf.SenderID) &&
		(qf.RecipientID == "" || m.RecipientID == qf.RecipientID)
}
