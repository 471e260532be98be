package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/plieapp/plie/schema"
)

// NotificationsService manages the current user's in-app notifications.
type NotificationsService struct {
	client *Client
}

// List returns up to limit notifications, optionally unread ones only.
func (s *NotificationsService) List(ctx context.Context, limit int, unreadOnly bool) (*schema.NotificationList, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if unreadOnly {
		query.Set("unread_only", "true")
	}
	path := "/notifications"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return do[schema.NotificationList](ctx, s.client, http.MethodGet, path, nil)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationsService) UnreadCount(ctx context.Context) (*schema.UnreadCount, error) {
	return do[schema.UnreadCount](ctx, s.client, http.MethodGet, "/notifications/unread-count", nil)
}

// MarkRead marks one notification as read.
func (s *NotificationsService) MarkRead(ctx context.Context, notificationID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notificationID), nil)
	return err
}

// MarkAllRead marks every notification as read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) (*schema.MarkAllReadResult, error) {
	return do[schema.MarkAllReadResult](ctx, s.client, http.MethodPost, "/notifications/read-all", nil)
}

// Delete removes a notification.
func (s *NotificationsService) Delete(ctx context.Context, notificationID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/notifications/%d", notificationID), nil)
	return err
}
