package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type contactRequest struct {
	Name  string `validate:"required"`
	Phone string `validate:"required,phone"`
}

func TestValidator_Phone(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&contactRequest{Name: "Ana", Phone: "+1 (555) 000-1111"}))

	err := v.Validate(&contactRequest{Name: "Ana", Phone: "call me"})
	assert.Error(t, err)
	assert.Equal(t, map[string]string{"phone": "phone"}, FieldErrors(err))

	err = v.Validate(&contactRequest{Phone: "123"})
	assert.Equal(t, map[string]string{"name": "required"}, FieldErrors(err))
}
