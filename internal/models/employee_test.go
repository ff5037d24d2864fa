package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEmployeePublic(t *testing.T) {
	emp := Employee{
		ID:            bson.NewObjectID(),
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         "grace@x.com",
		Position:      "Engineer",
		Salary:        120000,
		DateOfJoining: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		Department:    "Engineering",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	pub := emp.Public()

	assert.Equal(t, emp.ID.Hex(), pub.EmployeeID)
	assert.Equal(t, "Grace", pub.FirstName)
	assert.Nil(t, pub.ProfilePicture)

	emp.ProfilePicture = "/uploads/abc.png"
	pub = emp.Public()
	require.NotNil(t, pub.ProfilePicture)
	assert.Equal(t, "/uploads/abc.png", *pub.ProfilePicture)
}

func TestEmployeePublic_JSONShape(t *testing.T) {
	emp := Employee{
		ID:            bson.NewObjectID(),
		FirstName:     "Grace",
		DateOfJoining: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(emp.Public())
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	// profile_picture is serialized as an explicit null when absent.
	v, ok := got["profile_picture"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, emp.ID.Hex(), got["employee_id"])
	assert.NotContains(t, got, "created_at")
	assert.NotContains(t, got, "updated_at")
}
