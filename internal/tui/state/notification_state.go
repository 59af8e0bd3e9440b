package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (warning icon)
	LevelWarning
	// LevelError represents error notifications (error icon)
	LevelError
)

// Notification is a single user-facing message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the notifications shown inline in the tab bar.
// Notifications are cleared on the next normal-mode keypress.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a NotificationState with no notifications
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification with the given level and message
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recently added notification.
// The second return value is false when there are none.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}
