package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeveloperInput_Validate(t *testing.T) {
	valid := DeveloperInput{Email: "ada@example.com", Name: "Ada", CurrentCity: "London", PhoneNumber: "+44 20 7946 0000"}

	tests := []struct {
		name   string
		mutate func(in *DeveloperInput)
		want   []FieldError
	}{
		{
			name:   "valid",
			mutate: func(in *DeveloperInput) {},
			want:   nil,
		},
		{
			name:   "missing email",
			mutate: func(in *DeveloperInput) { in.Email = "" },
			want:   []FieldError{{Field: "email", Message: "Email is required."}},
		},
		{
			name:   "malformed email",
			mutate: func(in *DeveloperInput) { in.Email = "ada-at-example" },
			want:   []FieldError{{Field: "email", Message: "Email not valid."}},
		},
		{
			name: "missing name city and phone",
			mutate: func(in *DeveloperInput) {
				in.Name = ""
				in.CurrentCity = " "
				in.PhoneNumber = ""
			},
			want: []FieldError{
				{Field: "name", Message: "Name of the developer is required."},
				{Field: "currentCity", Message: "Current city name is required."},
				{Field: "phoneNumber", Message: "Phone number is required."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.Equal(t, tt.want, in.Validate())
		})
	}
}

func TestDeveloperInput_RoundTripsThroughView(t *testing.T) {
	in := DeveloperInput{Email: "ada@example.com", Name: "Ada", CurrentCity: "London", PhoneNumber: "123"}
	v := NewDeveloperView(in.Developer())
	assert.Equal(t, &DeveloperView{Email: "ada@example.com", Name: "Ada", CurrentCity: "London", PhoneNumber: "123"}, v)
}
