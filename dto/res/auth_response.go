package res

type RegisterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type LoginResponse struct {
	Token              string       `json:"token"`
	User               UserResponse `json:"user"`
	MustChangePassword bool         `json:"mustChangePassword"`
}
