// models/models.go
package models

// All returns every model managed by the schema migration.
func All() []interface{} {
	return []interface{}{
		&Service{},
		&Blog{},
		&Booking{},
		&ContactSubmission{},
		&NewsletterSubscriber{},
		&NotificationLog{},
	}
}
