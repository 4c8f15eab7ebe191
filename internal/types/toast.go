// Package types contains shared types used across the application.
package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// NewToast creates a toast that expires after ttl.
func NewToast(level ToastLevel, message string, ttl time.Duration) Toast {
	return Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	}
}

// PruneToasts drops expired toasts, preserving order.
func PruneToasts(toasts []Toast, now time.Time) []Toast {
	alive := toasts[:0]
	for _, t := range toasts {
		if t.Expires.After(now) {
			alive = append(alive, t)
		}
	}
	return alive
}
