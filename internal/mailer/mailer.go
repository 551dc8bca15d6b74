package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // optional display name
	From     string // required

	To []string

	Subject string

	TextBody string
	HTMLBody string
}
