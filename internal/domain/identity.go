package domain

import "github.com/google/uuid"

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=domain

// IDSource mints notification identities. The OS scheduler keys replacements
// on these, so tests pin the source to keep rebuilds comparable.
type IDSource interface {
	NotificationID() string
	ShortID() string
}

type uuidSource struct{}

// NewIDSource returns the uuid-backed production id source.
func NewIDSource() IDSource {
	return uuidSource{}
}

func (uuidSource) NotificationID() string {
	return uuid.NewString()
}

func (uuidSource) ShortID() string {
	return uuid.NewString()[:8]
}
