package dto

// AgencyRequest uses the Turkish field names of the acentalar table so
// the admin panel payloads map directly onto columns.
type AgencyRequest struct {
	AgencyName  string `json:"acenta_ismi" validate:"required"`
	FirstName   string `json:"isim" validate:"required"`
	LastName    string `json:"soyisim" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"telefon"`
	MobilePhone string `json:"mobil_telefon"`
	City        string `json:"sehir"`
	Country     string `json:"ulke"`
	Address     string `json:"adres"`
}

type ProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
}
