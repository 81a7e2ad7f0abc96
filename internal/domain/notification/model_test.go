package notification_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/radcabna/cosplanner/internal/domain/notification"
)

func TestAppNotification_Message(t *testing.T) {
	n := notification.AppNotification{EventName: "WinterCon", DaysLeft: 0}
	require.Equal(t, "Today is the day! WinterCon is happening now!", n.Message())

	n.DaysLeft = 1
	require.Equal(t, "The final fitting! WinterCon is in 1 day", n.Message())

	n.DaysLeft = 7
	require.Equal(t, "Get ready! WinterCon is in 7 days", n.Message())
}

func TestReminderID(t *testing.T) {
	require.Equal(t, "p1-7", notification.ReminderID("p1", 7))
	require.Equal(t, "p1-0", notification.ReminderID("p1", 0))
}
