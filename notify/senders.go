package notify

import (
	"fmt"
	"io"
)

// EmailSender announces the message on its output stream as an email send.
type EmailSender struct {
	out io.Writer
}

func NewEmailSender(out io.Writer) EmailSender {
	return EmailSender{out: out}
}

func (s EmailSender) Send(msg Message) {
	fmt.Fprintf(s.out, "Sending EMAIL: %s\n", msg.Content)
}

// SMSSender announces the message on its output stream as an SMS send.
type SMSSender struct {
	out io.Writer
}

func NewSMSSender(out io.Writer) SMSSender {
	return SMSSender{out: out}
}

func (s SMSSender) Send(msg Message) {
	fmt.Fprintf(s.out, "Sending SMS: %s\n", msg.Content)
}

// PushSender announces the message on its output stream as a push send.
type PushSender struct {
	out io.Writer
}

func NewPushSender(out io.Writer) PushSender {
	return PushSender{out: out}
}

func (s PushSender) Send(msg Message) {
	fmt.Fprintf(s.out, "Sending PUSH: %s\n", msg.Content)
}
