package db_models

// User mirrors the profile handed over by the identity provider after
// sign-in. AccountID is the provider's opaque id.
type User struct {
	BaseModel
	AccountID string `gorm:"uniqueIndex"`
	Email     string
	Name      string
	ImageURL  string
	JoinedAt  string
	Status    string `gorm:"default:user"`
}
