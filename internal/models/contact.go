package models

// Contact is a contact-form submission.
type Contact struct {
	ID             ID        `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	AltEmail       string    `json:"altEmail"`
	PhoneNumber    string    `json:"phoneNumber"`
	AltPhoneNumber string    `json:"altPhoneNumber"`
	Category       string    `json:"category"`
	Message        string    `json:"message"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// FullName joins first and last name, skipping empty parts.
func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
