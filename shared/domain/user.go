package domain

type Credentials struct {
	Email    string
	Password string
	Name     string
}

type User struct {
	Id           UserId `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Admin        bool   `json:"admin"`
	PasswordHash string `json:"-"`
}
