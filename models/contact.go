package models

// Contact maps a row of the Heroku Connect contact table. The table and its
// schema are provisioned by Heroku Connect; this app never migrates it and
// never writes ID or SFID.
type Contact struct {
	ID        int    `json:"id" gorm:"column:id;primaryKey"`
	SFID      string `json:"sfid" gorm:"column:sfid"`
	FirstName string `json:"firstname" gorm:"column:firstname"`
	LastName  string `json:"lastname" gorm:"column:lastname"`
	Title     string `json:"title" gorm:"column:title"`
	Email     string `json:"email" gorm:"column:email"`
	Phone     string `json:"phone" gorm:"column:phone"`
}

// TableName points GORM at the schema namespace owned by Heroku Connect.
func (Contact) TableName() string {
	return "salesforce.contact"
}
