package repository

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// SavedBook is one entry of a user's list. Position keeps insertion order.
type SavedBook struct {
	ID          uint     `gorm:"primaryKey"`
	UserID      string   `gorm:"size:36;not null;uniqueIndex:idx_saved_books_user_book"`
	BookID      string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_saved_books_user_book"`
	Position    int64    `gorm:"not null;index"`
	Title       string   `gorm:"type:text;not null"`
	Description string   `gorm:"type:text"`
	Authors     []string `gorm:"serializer:json"`
	Image       string   `gorm:"type:text"`
	Link        string   `gorm:"type:text"`
}
