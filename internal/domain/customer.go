package domain

// Customer is a transient value object; it is never persisted.
type Customer struct {
	Name          string `json:"name" yaml:"name"`
	Email         string `json:"email" yaml:"email"`
	ContactNumber string `json:"contact_number" yaml:"contact_number"`
}

// NewCustomer builds a Customer. No field is validated.
func NewCustomer(name, email, contactNumber string) Customer {
	return Customer{Name: name, Email: email, ContactNumber: contactNumber}
}

func (c Customer) String() string { return c.Name }
