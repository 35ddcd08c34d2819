package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"election-monitor/internal/mockdata"
)

func notificationFixtureStore() *mockdata.Store {
	store := mockdata.NewEmptyStore()

	store.AppendNotification(mockdata.Notification{
		ID: "nt_001", UserID: "usr_001", Type: "report", Title: "New report filed",
	})
	store.AppendNotification(mockdata.Notification{
		ID: "nt_002", UserID: "usr_001", Type: "result", Title: "Result submitted", IsRead: true,
	})
	store.AppendNotification(mockdata.Notification{
		ID: "nt_003", UserID: "usr_002", Type: "report", Title: "New report filed",
	})

	return store
}

func TestNotificationListFilters(t *testing.T) {
	svc := &mockNotificationService{store: notificationFixtureStore()}
	ctx := context.Background()

	notifications, err := svc.List(ctx, NotificationFilter{UserID: "usr_001"})
	require.NoError(t, err)
	assert.Len(t, notifications, 2)

	notifications, err = svc.List(ctx, NotificationFilter{UserID: "usr_001", UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "nt_001", notifications[0].ID)

	notifications, err = svc.List(ctx, NotificationFilter{Type: "report"})
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationMarkRead(t *testing.T) {
	svc := &mockNotificationService{store: notificationFixtureStore()}

	n, err := svc.MarkRead(context.Background(), "nt_001")
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	// Marking persists
	unread, err := svc.List(context.Background(), NotificationFilter{UserID: "usr_001", UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, unread)

	_, err = svc.MarkRead(context.Background(), "nt_404")
	assert.ErrorIs(t, err, ErrNotFound)
}
