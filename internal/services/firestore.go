package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/gags88/reminder-pwa/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const remindersCollection = "reminders"

// FirestoreService is a thin adapter over the managed document collection.
// It owns no state beyond the client; every call is a direct pass-through.
type FirestoreService struct {
	client *firestore.Client
}

// NewFirestoreService connects to Firestore for the given project.
// credentialsFile may be empty, in which case application default
// credentials are used.
func NewFirestoreService(ctx context.Context, projectID, credentialsFile string) (*FirestoreService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreService{
		client: client,
	}, nil
}

func (fs *FirestoreService) Close() error {
	return fs.client.Close()
}

// ListReminders returns every document in the reminders collection. Order is
// whatever the backend yields; callers must not rely on it being stable.
func (fs *FirestoreService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	iter := fs.client.Collection(remindersCollection).Documents(ctx)

	var reminders []models.Reminder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reminders: %w", err)
		}

		var reminder models.Reminder
		if err := doc.DataTo(&reminder); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reminder: %w", err)
		}
		reminder.ID = doc.Ref.ID

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// CreateReminder inserts a new document holding exactly title and date.
// The backend assigns the identifier.
func (fs *FirestoreService) CreateReminder(ctx context.Context, title, date string) (*models.Reminder, error) {
	reminder := &models.Reminder{
		Title: title,
		Date:  date,
	}

	ref, _, err := fs.client.Collection(remindersCollection).Add(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	reminder.ID = ref.ID

	return reminder, nil
}

// UpdateReminder replaces both fields on the identified document. The
// backend reports a missing document as an error.
func (fs *FirestoreService) UpdateReminder(ctx context.Context, id, title, date string) error {
	_, err := fs.client.Collection(remindersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: title},
		{Path: "date", Value: date},
	})
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	return nil
}

func (fs *FirestoreService) DeleteReminder(ctx context.Context, id string) error {
	_, err := fs.client.Collection(remindersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}
