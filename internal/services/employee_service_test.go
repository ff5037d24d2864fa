package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name       string
		department string
		position   string
		want       bson.M
	}{
		{
			name: "no criteria",
			want: bson.M{},
		},
		{
			name:       "whitespace only is ignored",
			department: "   ",
			position:   "",
			want:       bson.M{},
		},
		{
			name:       "department only",
			department: "eng",
			want: bson.M{
				"department": bson.M{"$regex": "eng", "$options": "i"},
			},
		},
		{
			name:     "position only",
			position: "manager",
			want: bson.M{
				"position": bson.M{"$regex": "manager", "$options": "i"},
			},
		},
		{
			name:       "both, trimmed",
			department: " Engineering ",
			position:   " dev ",
			want: bson.M{
				"department": bson.M{"$regex": "Engineering", "$options": "i"},
				"position":   bson.M{"$regex": "dev", "$options": "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchFilter(tt.department, tt.position))
		})
	}
}
