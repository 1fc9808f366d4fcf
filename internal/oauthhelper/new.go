package oauthhelper

import (
	"io"

	"calendar-tool-service/pkg/log"
)

const revokeURL = "https://myaccount.google.com/permissions"

type handler struct {
	l         log.Logger
	session   *Session
	exchanger Exchanger
	terminal  io.Writer
}

// New creates the helper's HTTP handler. Issued tokens are echoed to
// terminal for the operator.
func New(l log.Logger, session *Session, exchanger Exchanger, terminal io.Writer) *handler {
	return &handler{
		l:         l,
		session:   session,
		exchanger: exchanger,
		terminal:  terminal,
	}
}
