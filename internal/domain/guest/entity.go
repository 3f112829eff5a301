package guest

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("guest name cannot be empty")
	ErrInvalidEmail = errors.New("invalid guest email")
)

// Guest is the booking party. userID links it to the caller identity carried
// in the access token.
type Guest struct {
	id        uuid.UUID
	userID    uuid.UUID
	firstName string
	lastName  string
	email     string
}

func NewGuest(id, userID uuid.UUID, firstName, lastName, email string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	return &Guest{
		id:        id,
		userID:    userID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
	}, nil
}

func (g *Guest) FullName() string {
	return strings.TrimSpace(g.firstName + " " + g.lastName)
}

func (g *Guest) Owns(guestID uuid.UUID) bool {
	return g.id == guestID
}

func (g *Guest) ID() uuid.UUID     { return g.id }
func (g *Guest) UserID() uuid.UUID { return g.userID }
func (g *Guest) FirstName() string { return g.firstName }
func (g *Guest) LastName() string  { return g.lastName }
func (g *Guest) Email() string     { return g.email }
