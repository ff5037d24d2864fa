package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Employee represents a personnel record as persisted in the employees
// collection.
type Employee struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	FirstName      string        `bson:"first_name"`
	LastName       string        `bson:"last_name"`
	Email          string        `bson:"email"`
	Position       string        `bson:"position"`
	Salary         float64       `bson:"salary"`
	DateOfJoining  time.Time     `bson:"date_of_joining"`
	Department     string        `bson:"department"`
	ProfilePicture string        `bson:"profile_picture,omitempty"`
	CreatedAt      time.Time     `bson:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"`
}

// PublicEmployee is the externally visible shape of an employee record.
// The internal _id is exposed as employee_id and profile_picture is null
// when no picture was uploaded.
type PublicEmployee struct {
	EmployeeID     string    `json:"employee_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Salary         float64   `json:"salary"`
	DateOfJoining  time.Time `json:"date_of_joining"`
	Department     string    `json:"department"`
	ProfilePicture *string   `json:"profile_picture"`
}

// Public converts the persisted record to its public shape.
func (e Employee) Public() PublicEmployee {
	pub := PublicEmployee{
		EmployeeID:    e.ID.Hex(),
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Position:      e.Position,
		Salary:        e.Salary,
		DateOfJoining: e.DateOfJoining,
		Department:    e.Department,
	}
	if e.ProfilePicture != "" {
		pub.ProfilePicture = &e.ProfilePicture
	}
	return pub
}
