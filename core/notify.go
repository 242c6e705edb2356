package core

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a transient user-facing message, rendered by the front end as a toast.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}
