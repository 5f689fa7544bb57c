//go:generate go run go.uber.org/mock/mockgen -source=sender.go -destination=../mocks/mock_sender.go -package=mocks

// Package notify implements the notification sample: a set of channel
// senders behind one capability and a service broadcasting to all of them.
package notify

// Message is an immutable notification payload with no identity.
type Message struct {
	Content string
}

// Sender delivers a Message through one channel. The senders in scope
// only write to an output stream and cannot fail, so Send returns nothing;
// any real transport concern lives outside this module.
type Sender interface {
	Send(msg Message)
}
