package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test UserForm validation
func TestUserFormValidation(t *testing.T) {
	validForm := UserForm{Name: "John Doe", Email: "john@example.com"}
	assert.False(t, validForm.Validate().HasErrors())

	invalidForm := UserForm{}
	errors := invalidForm.Validate()
	assert.Equal(t, []string{"name", "email"}, errors.Fields())
	assert.Equal(t, []string{"Name is required", "Email is required"}, errors.GetMessages())
}

// Test StudentForm validation, major is optional
func TestStudentFormValidation(t *testing.T) {
	validForm := StudentForm{Name: "Jane", Email: "jane@example.com", Grade: "Junior"}
	assert.False(t, validForm.Validate().HasErrors())
	assert.Nil(t, validForm.MajorOrNil())

	validForm.Major = "Computer Science"
	require.NotNil(t, validForm.MajorOrNil())
	assert.Equal(t, "Computer Science", *validForm.MajorOrNil())

	missingGrade := StudentForm{Name: "Jane", Email: "jane@example.com"}
	assert.Equal(t, []string{"grade"}, missingGrade.Validate().Fields())
}

func TestRatingForm(t *testing.T) {
	form := RatingForm{Title: "S"}
	assert.Equal(t, []string{"artist", "rating"}, form.Validate().Fields())

	form = RatingForm{Title: "S", Artist: "X", Rating: "sideways"}
	assert.False(t, form.Validate().HasErrors())
	assert.False(t, RatingType(form.Rating).Valid())

	assert.True(t, RatingUp.Valid())
	assert.True(t, RatingDown.Valid())
	assert.False(t, RatingType("UP").Valid())
}

func TestRatingSummaryJSON(t *testing.T) {
	data, err := json.Marshal(RatingSummaryResponse{Status: StatusSuccess})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","ratings":{"up":0,"down":0},"userRating":null}`, string(data))
}

func TestStudentFieldsKeepNullMajor(t *testing.T) {
	data, err := json.Marshal((&Student{Name: "A", Email: "a@x.com", Grade: "Senior"}).Fields())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","email":"a@x.com","grade":"Senior","major":null}`, string(data))
}
