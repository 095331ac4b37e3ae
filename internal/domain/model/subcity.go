package model

type Subcity struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// DefaultSubcities is seeded on start-up.
var DefaultSubcities = []string{
	"Addis Ketema",
	"Akaky Kaliti",
	"Arada",
	"Bole",
	"Gullele",
	"Kirkos",
	"Kolfe Keranio",
	"Lemi Kura",
	"Lideta",
	"Nifas Silk-Lafto",
	"Sebeta",
	"Yeka",
}
