package contact

import "time"

// Contact is one inbound contact-form message.
// IsRead exists in the schema but nothing exposed ever sets it — there is
// no mark-as-read action. Kept as-is rather than invented.
type Contact struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Message     string    `gorm:"column:message;not null" json:"message"`
	CreatedDate time.Time `gorm:"column:created_date" json:"created_date"`
	IsRead      bool      `gorm:"column:is_read;default:false" json:"is_read"`
}

func (Contact) TableName() string { return "contacts" }
