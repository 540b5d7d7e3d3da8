package req

type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"required,min=8"`
	Birthdate string `json:"birthdate" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}
