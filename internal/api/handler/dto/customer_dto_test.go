package dto

import (
	"testing"

	"customer-service/internal/domain/customer"

	"github.com/stretchr/testify/assert"
)

func TestValidateCustomerWhenValid(t *testing.T) {
	rep := customer.Representation{
		FirstName: "Mohamed",
		LastName:  "Youssfi",
		Email:     "med@gmail.com",
	}

	violations := ValidateCustomer(rep)
	assert.True(t, violations.IsEmpty())
}

func TestValidateCustomerWhenAllFieldsEmpty(t *testing.T) {
	violations := ValidateCustomer(customer.Representation{})

	assert.Len(t, violations, 3)
	assert.Len(t, violations["firstName"], 2)
	assert.Len(t, violations["lastName"], 2)
	assert.Len(t, violations["email"], 2)
	assert.Contains(t, violations["email"], "must not be empty")
	assert.Contains(t, violations["email"], "length must be at least 5")
}

func TestValidateCustomerWhenTooShort(t *testing.T) {
	rep := customer.Representation{
		FirstName: "Mo",
		LastName:  "Youssfi",
		Email:     "m@io",
	}

	violations := ValidateCustomer(rep)

	assert.Len(t, violations, 2)
	assert.Equal(t, []string{"length must be at least 3"}, violations["firstName"])
	assert.Equal(t, []string{"length must be at least 5"}, violations["email"])
	assert.NotContains(t, violations, "lastName")
}

func TestViolationsAdd(t *testing.T) {
	v := Violations{}
	assert.True(t, v.IsEmpty())

	v.Add("email", "must not be empty")
	v.Add("email", "length must be at least 5")

	assert.False(t, v.IsEmpty())
	assert.Equal(t, []string{"must not be empty", "length must be at least 5"}, v["email"])
}
