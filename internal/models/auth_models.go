package models

// Credentials for the employee login request.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Employee is the identity carried by an employee session token.
type Employee struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
