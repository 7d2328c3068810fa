package ui

import (
	"context"

	"github.com/gags88/reminder-pwa/internal/models"
)

// ReminderStore is what the controller needs from the document collection.
// Satisfied by services.FirestoreService; tests substitute a fake.
type ReminderStore interface {
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, title, date string) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, id, title, date string) error
	DeleteReminder(ctx context.Context, id string) error
}
