package services

import (
	"context"

	"election-monitor/internal/mockdata"
)

type mockNotificationService struct {
	store *mockdata.Store
}

func (s *mockNotificationService) List(_ context.Context, filter NotificationFilter) ([]mockdata.Notification, error) {
	matched := make([]mockdata.Notification, 0)
	for _, n := range s.store.Notifications() {
		if filter.UserID != "" && n.UserID != filter.UserID {
			continue
		}
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		if filter.UnreadOnly && n.IsRead {
			continue
		}
		matched = append(matched, n)
	}
	return matched, nil
}

func (s *mockNotificationService) MarkRead(_ context.Context, id string) (*mockdata.Notification, error) {
	for _, n := range s.store.Notifications() {
		if n.ID == id {
			n.IsRead = true
			s.store.ReplaceNotification(n)
			return &n, nil
		}
	}
	return nil, notFound("notification", id)
}

type httpNotificationService struct {
	client clientAPI
}

func (s *httpNotificationService) List(ctx context.Context, filter NotificationFilter) ([]mockdata.Notification, error) {
	var out listEnvelope[mockdata.Notification]
	if err := s.client.Get(ctx, "/notifications", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpNotificationService) MarkRead(ctx context.Context, id string) (*mockdata.Notification, error) {
	var out itemEnvelope[mockdata.Notification]
	if err := s.client.Post(ctx, "/notifications/"+id+"/read", nil, &out); err != nil {
		return nil, translateHTTPError(err, "notification", id)
	}
	return &out.Data, nil
}
