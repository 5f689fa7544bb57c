package notify

// NotificationService broadcasts one message to an ordered set of senders.
// The set is fixed at construction: supporting a new channel means
// registering another Sender, never changing this type.
type NotificationService struct {
	senders []Sender
}

func NewNotificationService(senders ...Sender) *NotificationService {
	return &NotificationService{senders: senders}
}

// Notify calls Send on every sender exactly once, in registration order.
// Each call is independent; there is no partial-failure policy because
// in-scope senders cannot fail.
func (s *NotificationService) Notify(msg Message) {
	for _, sender := range s.senders {
		sender.Send(msg)
	}
}
