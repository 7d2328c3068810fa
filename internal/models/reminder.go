package models

// DateLayout is the calendar-date format reminders are stored with.
// Due dates carry no time component.
const DateLayout = "2006-01-02"

// Reminder represents a dated reminder. ID is assigned by the backend on
// creation and stays empty until the document is persisted; it lives on the
// document reference, not inside the document itself.
type Reminder struct {
	ID    string `firestore:"-" json:"id,omitempty"`
	Title string `firestore:"title" json:"title"`
	Date  string `firestore:"date" json:"date"`
}
