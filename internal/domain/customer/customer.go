package customer

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func NewCustomer(firstName, lastName, email string) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}

// IsPersisted reports whether the store has assigned an identifier yet.
func (c *Customer) IsPersisted() bool {
	return c.ID != 0
}
