package ds

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a dashboard account. Role is "admin", "manager" or "user".
type User struct {
	UserID    int       `gorm:"primaryKey;column:user_id" json:"id"`
	Username  string    `gorm:"column:username;unique" json:"username"`
	Email     string    `gorm:"column:email;unique" json:"email"`
	Password  string    `gorm:"column:password" json:"password,omitempty"`
	Role      string    `gorm:"column:role;default:user" json:"role"`
	FirstName string    `gorm:"column:first_name" json:"firstName"`
	LastName  string    `gorm:"column:last_name" json:"lastName"`
	Avatar    string    `gorm:"column:avatar" json:"avatar,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// BeforeCreate hashes the password before the row is written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (User) TableName() string {
	return "users"
}
