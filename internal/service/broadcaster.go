package service

import "mmgp/internal/model"

// Notifier pushes wizard notifications to listeners of a session (avoids import cycle with ws)
type Notifier interface {
	Notify(sessionID string, n model.Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, model.Notification) {}
