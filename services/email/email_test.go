package emailsvc

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core"
	logsvc "github.com/trezcool/unirepo/services/logger"
)

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	ResetSentMessages()
	svc := NewConsoleServiceMock(core.NewTestConfig(), logsvc.NewNopLogger())

	to := []mail.Address{{Name: "John Doe", Address: "student@unijos.edu.ng"}}
	svc.SendMessages(
		&core.EmailMessage{To: to, Subject: "hello", BodyStr: "see you tomorrow"},
		&core.EmailMessage{Subject: "nobody", BodyStr: "dropped"}, // no recipient
		&core.EmailMessage{To: to, Subject: "empty"},              // no content
	)

	sent := Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "hello", sent[0].Subject)
	assert.Equal(t, "see you tomorrow", sent[0].TextContent)
}

func TestConsoleService_build(t *testing.T) {
	conf := core.NewTestConfig()
	svc := consoleService{defaultFromEmail: conf.DefaultFromEmail, subjPrefix: "[UniJos] ", logger: logsvc.NewNopLogger()}

	body, err := svc.build(core.EmailMessage{
		To:          []mail.Address{{Address: "a@unijos.edu.ng"}, {Address: "b@unijos.edu.ng"}},
		Subject:     "Project feedback",
		TextContent: "plain",
		HTMLContent: "<p>html</p>",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Subject: [UniJos] Project feedback\r\n")
	assert.Contains(t, body, "To: <a@unijos.edu.ng>, <b@unijos.edu.ng>\r\n")
	assert.Contains(t, body, "plain\r\n")
	assert.Contains(t, body, "<p>html</p>\r\n")
}

func TestSendgridService_prepare(t *testing.T) {
	conf := core.NewTestConfig()
	svc := NewSendgridService(conf, logsvc.NewNopLogger()).(*sendgridService)

	m := svc.prepare(core.EmailMessage{
		To:          []mail.Address{{Name: "John Doe", Address: "student@unijos.edu.ng"}},
		Subject:     "New message",
		TextContent: "body",
	})
	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "["+conf.AppName+"] New message", m.Personalizations[0].Subject)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "student@unijos.edu.ng", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 1)
	assert.Equal(t, "text/plain", m.Content[0].Type)
}
