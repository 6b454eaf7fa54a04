package rest

import "github.com/dmitrijs2005/taskhub/internal/server/models"

type signupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public projection of a user: the password hash is
// never serialized to any external response.
type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

type createTaskRequest struct {
	Name     string `json:"name"`
	DueDate  string `json:"dueDate"`
	Priority int    `json:"priority"`
}

// updateTaskRequest carries the mutable fields only; absent fields stay
// untouched. The owner is never part of the payload.
type updateTaskRequest struct {
	Name     *string `json:"name"`
	DueDate  *string `json:"dueDate"`
	Priority *int    `json:"priority"`
}

type errorResponse struct {
	Error string `json:"error"`
}
