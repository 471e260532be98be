package schema

// Notification is an in-app message for the current user.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationList is the /notifications response.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// UnreadCount wraps /notifications/unread-count.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}

// MarkAllReadResult reports how many notifications were marked read.
type MarkAllReadResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
