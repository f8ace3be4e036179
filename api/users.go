package api

import (
	"net/http"

	"exercise-tracker/user"
)

type createUserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request, b body) {
	u, err := a.users.InsertUser(r.Context(), user.User{Name: b.String("username")})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Response(w, http.StatusOK, createUserResponse{
		ID:       u.ID,
		Username: u.Name,
	})
}

func (a *API) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.GetUsers(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	a.Response(w, http.StatusOK, users)
}
