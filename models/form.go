package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ContactForm holds the submitted (or to-be-rendered) values for the five
// editable contact fields. Title is optional; phone format is left to
// Salesforce, which validates it on its own ingestion path.
type ContactForm struct {
	FirstName string `form:"firstname" validate:"required"`
	LastName  string `form:"lastname" validate:"required"`
	Title     string `form:"title"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required"`
}

var fieldMessages = map[string]map[string]string{
	"FirstName": {"required": "First name is required."},
	"LastName":  {"required": "Last name is required."},
	"Email": {
		"required": "Email address is required.",
		"email":    "Email address is invalid.",
	},
	"Phone": {"required": "Phone number is required."},
}

// Validate checks every field and returns one user-facing message per
// violated field. A nil result means the form may be committed.
func (f ContactForm) Validate() []string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Submitted form could not be read."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.StructField()][fe.Tag()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is invalid.", fe.StructField()))
		}
	}
	return msgs
}

// FormFromContact populates form state from a record's current field values.
func FormFromContact(c Contact) ContactForm {
	return ContactForm{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Title:     c.Title,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ApplyTo overwrites the record's five mutable fields with the form values.
// ID and SFID are never touched.
func (f ContactForm) ApplyTo(c *Contact) {
	c.FirstName = f.FirstName
	c.LastName = f.LastName
	c.Title = f.Title
	c.Email = f.Email
	c.Phone = f.Phone
}
