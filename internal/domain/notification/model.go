package notification

import (
	"fmt"
	"time"
)

// AppNotification is a materialized, user-visible reminder. It denormalizes
// the project and event names so it stays readable after the project is
// deleted; ProjectID is a non-owning back-reference.
type AppNotification struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	EventName   string    `json:"event_name"`
	DaysLeft    int       `json:"days_left"`
	Date        time.Time `json:"date"`
	Read        bool      `json:"read"`
}

// Message renders the reminder text for the milestone this fired at.
func (n AppNotification) Message() string {
	switch n.DaysLeft {
	case 0:
		return fmt.Sprintf("Today is the day! %s is happening now!", n.EventName)
	case 1:
		return fmt.Sprintf("The final fitting! %s is in 1 day", n.EventName)
	default:
		return fmt.Sprintf("Get ready! %s is in %d days", n.EventName, n.DaysLeft)
	}
}

// ReminderID builds the deferred-delivery identifier for a project milestone.
func ReminderID(projectID string, milestone int) string {
	return fmt.Sprintf("%s-%d", projectID, milestone)
}
