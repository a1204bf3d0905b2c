package domain

import "github.com/google/uuid"

// User is the identity every other aggregate is owned by.
type User struct {
	AggregateBase
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Settings    UserSettings `json:"settings"`
}

// NewUser creates a user.
func NewUser(name string) *User {
	u := &User{
		ID:   uuid.New(),
		Name: name,
		Settings: UserSettings{
			Timezone: "UTC",
		},
	}
	u.markNew()
	return u
}

func (u *User) AggregateID() uuid.UUID    { return u.ID }
func (u *User) AggregateType() string     { return "user" }
func (u *User) AggregateOwner() uuid.UUID { return u.ID }
