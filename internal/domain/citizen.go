package domain

import "time"

// NINLength is the fixed length of a national identification number
const NINLength = 11

// Genders accepted by the citizens table
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Citizen Model. Records are insert-only; NIN never changes once stored.
type Citizen struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NIN           string    `gorm:"column:nin;type:varchar(11);uniqueIndex:idx_citizens_nin;not null" json:"nin"`
	FirstName     string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email         *string   `gorm:"type:varchar(150);uniqueIndex:idx_citizens_email" json:"email"`
	Phone         *string   `gorm:"type:varchar(15)" json:"phone"`
	DateOfBirth   Date      `gorm:"type:date;not null" json:"date_of_birth"`
	StateOfOrigin *string   `gorm:"type:varchar(100);index" json:"state_of_origin"`
	LGA           *string   `gorm:"column:lga;type:varchar(100)" json:"lga"`
	Address       *string   `gorm:"type:text" json:"address"`
	Occupation    *string   `gorm:"type:varchar(100)" json:"occupation"`
	Gender        *string   `gorm:"type:varchar(10);check:chk_citizens_gender,gender IN ('Male','Female','Other')" json:"gender"`
	MaritalStatus *string   `gorm:"type:varchar(20)" json:"marital_status"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsValidGender reports whether g is one of the accepted genders
func IsValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PageInfo describes one page of a search result
type PageInfo struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}
