package mail

import (
	"bytes"
	"text/template"

	"eventos_xpto/internal/domain/entities"
)

// ConfirmationData feeds both confirmation templates. Rendering is pure so
// the templates stay testable without a mail transport.

type ConfirmationData struct {
	FullName      string
	Email         string
	Phone         string
	ReferenceID   string
	TransactionID string
	EventName     string
}

var participantTemplate = template.Must(template.New("participant").Parse(
	`Hello {{.FullName}},

Your registration for {{.EventName}} is confirmed.

Reference id: {{.ReferenceID}}
Payment id:   {{.TransactionID}}

Keep this reference id for check-in. See you there!
`))

var operatorTemplate = template.Must(template.New("operator").Parse(
	`Payment received for {{.EventName}}.

Participant: {{.FullName}} <{{.Email}}> ({{.Phone}})
Reference:   {{.ReferenceID}}
Payment id:  {{.TransactionID}}
`))

func NewConfirmationData(reg entities.Registration, transactionID, eventName string) ConfirmationData {
	return ConfirmationData{
		FullName:      reg.FullName,
		Email:         reg.Email,
		Phone:         reg.Phone,
		ReferenceID:   reg.ReferenceID,
		TransactionID: transactionID,
		EventName:     eventName,
	}
}

func RenderParticipantConfirmation(data ConfirmationData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := participantTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "Registration confirmed: " + data.EventName, buf.String(), nil
}

func RenderOperatorNotification(data ConfirmationData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := operatorTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "Payment received: " + data.ReferenceID, buf.String(), nil
}
