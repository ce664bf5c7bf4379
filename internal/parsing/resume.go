// Package parsing derives contact details from parsed resume text.
package parsing

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-\s]?)?\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`)
)

// ExtractEmail returns the first email address found in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number found in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// Contact holds contact details derived from parsed text, falling back to
// submitted metadata for anything the text does not contain.
type Contact struct {
	Email string
	Phone string
}

// ExtractContact derives email and phone from text, using the fallback values
// when the text yields nothing.
func ExtractContact(text, fallbackEmail, fallbackPhone string) Contact {
	c := Contact{
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
	if c.Email == "" {
		c.Email = fallbackEmail
	}
	if c.Phone == "" {
		c.Phone = fallbackPhone
	}
	return c
}
