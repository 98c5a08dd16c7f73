package models

import "time"

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking reserves one exact date-time slot. The unique index on
// BookingDateTime is the authority on slot availability: concurrent
// creates for the same slot race on the insert, not on a pre-check.
type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	BookingDateTime time.Time `gorm:"uniqueIndex;not null" json:"booking_date_time"`
	Capacity        int       `json:"capacity"`
	Name            string    `gorm:"type:varchar(100)" json:"name"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone"`
	Status          string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
