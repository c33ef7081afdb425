package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/utils"
)

var ErrNotificationNotFound = fmt.Errorf("notification not found")

// notificationMessages holds the default English copy per notification
// type. Installed message files override these through the i18n bundle.
var notificationMessages = map[schema.NotificationType]struct {
	title   *i18n.Message
	content *i18n.Message
}{
	schema.NotifyOfferReceived: {
		title:   &i18n.Message{ID: "offer_received.title", Other: "New offer on your request"},
		content: &i18n.Message{ID: "offer_received.content", Other: "A helper sent an offer on \"{{.Title}}\"."},
	},
	schema.NotifyOfferAccepted: {
		title:   &i18n.Message{ID: "offer_accepted.title", Other: "Your offer was accepted"},
		content: &i18n.Message{ID: "offer_accepted.content", Other: "Your offer on \"{{.Title}}\" was accepted. A session has been scheduled."},
	},
	schema.NotifyOfferDeclined: {
		title:   &i18n.Message{ID: "offer_declined.title", Other: "Your offer was declined"},
		content: &i18n.Message{ID: "offer_declined.content", Other: "The requester went with someone else this time."},
	},
	schema.NotifySessionStarted: {
		title:   &i18n.Message{ID: "session_started.title", Other: "Session started"},
		content: &i18n.Message{ID: "session_started.content", Other: "Your collaboration session is now live."},
	},
	schema.NotifySessionCompleted: {
		title:   &i18n.Message{ID: "session_completed.title", Other: "Session completed"},
		content: &i18n.Message{ID: "session_completed.content", Other: "The session has ended. Thanks for collaborating!"},
	},
	schema.NotifySessionCancelled: {
		title:   &i18n.Message{ID: "session_cancelled.title", Other: "Session cancelled"},
		content: &i18n.Message{ID: "session_cancelled.content", Other: "The session was cancelled and the request reopened."},
	},
}

func (s *MicroCollabStore) loadNotifications() []schema.Notification {
	notifications := []schema.Notification{}
	s.kv.Get(schema.NotificationsKey, &notifications)
	return notifications
}

func (s *MicroCollabStore) saveNotifications(notifications []schema.Notification) {
	s.kv.Set(schema.NotificationsKey, notifications)
}

// pushNotification appends a localized notification for a user as part
// of a cross-entity flow. It never fails the surrounding operation.
func (s *MicroCollabStore) pushNotification(userID string, typ schema.NotificationType, link string, data map[string]interface{}) {
	messages, ok := notificationMessages[typ]
	if !ok {
		return
	}

	localizer := utils.NewLocalizer("en")
	n := schema.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   typ,
		Title: localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: messages.title,
			TemplateData:   data,
		}),
		Content: localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: messages.content,
			TemplateData:   data,
		}),
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}

	notifications := s.loadNotifications()
	notifications = append(notifications, n)
	s.saveNotifications(notifications)
}

// ListNotifications returns a user's notifications, newest first.
func (s *MicroCollabStore) ListNotifications(userID string) ([]schema.Notification, error) {
	s.simulate(readLatency)

	notifications := []schema.Notification{}
	for _, n := range s.loadNotifications() {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *MicroCollabStore) CountUnread(userID string) (int, error) {
	s.simulate(readLatency)

	count := 0
	for _, n := range s.loadNotifications() {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *MicroCollabStore) MarkNotificationRead(id string) error {
	s.simulate(writeLatency)

	notifications := s.loadNotifications()
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			s.saveNotifications(notifications)
			return nil
		}
	}

	return ErrNotificationNotFound
}

func (s *MicroCollabStore) MarkAllNotificationsRead(userID string) error {
	s.simulate(writeLatency)

	notifications := s.loadNotifications()
	for i := range notifications {
		if notifications[i].UserID == userID {
			notifications[i].Read = true
		}
	}
	s.saveNotifications(notifications)
	return nil
}
