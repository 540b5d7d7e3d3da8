package entity

// Account holds login credentials, keyed by the same normalized phone as the
// profile it owns. MustChangePassword flags accounts still on the default
// password an admin seeded at creation.
type Account struct {
	BaseEntity
	Phone              string `json:"phone" gorm:"unique;type:varchar(20)"`
	Password           string `json:"-" gorm:"type:varchar(255)"`
	MustChangePassword bool   `json:"mustChangePassword" gorm:"default:false"`
	User               User   `gorm:"foreignKey:AuthId;references:ID"`
}
