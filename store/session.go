package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/schema"
)

var ErrSessionNotFound = fmt.Errorf("session not found")

func (s *MicroCollabStore) loadSessions() []schema.Session {
	sessions := []schema.Session{}
	s.kv.Get(schema.SessionsKey, &sessions)
	return sessions
}

func (s *MicroCollabStore) saveSessions(sessions []schema.Session) {
	s.kv.Set(schema.SessionsKey, sessions)
}

// GetSession returns a session enriched with both participants.
func (s *MicroCollabStore) GetSession(id string) (*schema.SessionDetail, error) {
	s.simulate(readLatency)

	for _, sess := range s.loadSessions() {
		if sess.ID != id {
			continue
		}

		detail := schema.SessionDetail{Session: sess}
		if helper, err := s.findUser(sess.HelperID); err == nil {
			detail.Helper = helper
		}
		if requester, err := s.findUser(sess.RequesterID); err == nil {
			detail.Requester = requester
		}
		return &detail, nil
	}

	return nil, ErrSessionNotFound
}

// ListSessions returns the sessions a user takes part in, either side,
// newest scheduled first.
func (s *MicroCollabStore) ListSessions(userID string) ([]schema.Session, error) {
	s.simulate(readLatency)

	sessions := []schema.Session{}
	for _, sess := range s.loadSessions() {
		if sess.HelperID == userID || sess.RequesterID == userID {
			sessions = append(sessions, sess)
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].ScheduledStart.After(sessions[j].ScheduledStart)
	})
	return sessions, nil
}

// StartSession moves a session to active and stamps the actual start.
func (s *MicroCollabStore) StartSession(id string) (*schema.Session, error) {
	s.simulate(writeLatency)

	sessions := s.loadSessions()
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}

		now := time.Now().UTC()
		sessions[i].Status = schema.SessionActive
		sessions[i].ActualStart = &now
		s.saveSessions(sessions)

		s.pushNotification(sessions[i].RequesterID, schema.NotifySessionStarted,
			"/sessions/"+id, nil)

		s.publish(event.SessionStarted, sessions[i])
		return &sessions[i], nil
	}

	return nil, ErrSessionNotFound
}

// EndSession completes a session, computes its duration and marks the
// parent request completed. The helper's completion counter is bumped.
func (s *MicroCollabStore) EndSession(id string, notes string) (*schema.Session, error) {
	s.simulate(writeLatency)

	sessions := s.loadSessions()
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}

		now := time.Now().UTC()
		sess := &sessions[i]
		sess.Status = schema.SessionCompleted
		sess.EndTime = &now
		if notes != "" {
			sess.Notes = notes
		}

		start := sess.ScheduledStart
		if sess.ActualStart != nil {
			start = *sess.ActualStart
		}
		if minutes := int(now.Sub(start).Minutes()); minutes > 0 {
			sess.DurationMinutes = minutes
		} else {
			sess.DurationMinutes = 0
		}

		s.saveSessions(sessions)

		if _, err := s.setRequestStatus(sess.RequestID, schema.RequestCompleted); err != nil {
			return nil, err
		}
		s.bumpSessionsCompleted(sess.HelperID)

		s.pushNotification(sess.RequesterID, schema.NotifySessionCompleted,
			"/sessions/"+id, nil)
		s.pushNotification(sess.HelperID, schema.NotifySessionCompleted,
			"/sessions/"+id, nil)

		s.publish(event.SessionEnded, *sess)
		return sess, nil
	}

	return nil, ErrSessionNotFound
}

// CancelSession cancels a session and reopens the parent request.
func (s *MicroCollabStore) CancelSession(id string) (*schema.Session, error) {
	s.simulate(writeLatency)

	sessions := s.loadSessions()
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}

		sessions[i].Status = schema.SessionCancelled
		s.saveSessions(sessions)

		if _, err := s.setRequestStatus(sessions[i].RequestID, schema.RequestOpen); err != nil {
			return nil, err
		}

		s.pushNotification(sessions[i].RequesterID, schema.NotifySessionCancelled,
			"/sessions/"+id, nil)
		s.pushNotification(sessions[i].HelperID, schema.NotifySessionCancelled,
			"/sessions/"+id, nil)

		s.publish(event.SessionCancelled, sessions[i])
		return &sessions[i], nil
	}

	return nil, ErrSessionNotFound
}

// ListMessages returns a session's messages in chronological order.
func (s *MicroCollabStore) ListMessages(sessionID string) ([]schema.Message, error) {
	s.simulate(readLatency)

	messages := []schema.Message{}
	all := []schema.Message{}
	s.kv.Get(schema.MessagesKey, &all)
	for _, m := range all {
		if m.SessionID == sessionID {
			messages = append(messages, m)
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

// SendMessage appends a message to an existing session.
func (s *MicroCollabStore) SendMessage(sessionID, senderID, content string, messageType schema.MessageType) (*schema.Message, error) {
	s.simulate(writeLatency)

	found := false
	for _, sess := range s.loadSessions() {
		if sess.ID == sessionID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	if messageType == "" {
		messageType = schema.MessageText
	}

	m := schema.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		SenderID:  senderID,
		Content:   content,
		Type:      messageType,
		CreatedAt: time.Now().UTC(),
	}

	messages := []schema.Message{}
	s.kv.Get(schema.MessagesKey, &messages)
	messages = append(messages, m)
	s.kv.Set(schema.MessagesKey, messages)

	return &m, nil
}
