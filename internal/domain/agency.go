package domain

import "time"

// Agency mirrors the acentalar table: partner travel agencies managed
// from the admin panel.
type Agency struct {
	ID          string    `json:"id" db:"id"`
	AgencyName  string    `json:"acenta_ismi" db:"acenta_ismi"`
	FirstName   string    `json:"isim" db:"isim"`
	LastName    string    `json:"soyisim" db:"soyisim"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"telefon" db:"telefon"`
	MobilePhone string    `json:"mobil_telefon" db:"mobil_telefon"`
	City        string    `json:"sehir" db:"sehir"`
	Country     string    `json:"ulke" db:"ulke"`
	Address     string    `json:"adres" db:"adres"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Profile is an admin panel user record.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
