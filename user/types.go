package user

import "exercise-tracker/apperr"

type User struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return apperr.Validation(apperr.Required("name"))
	}
	return nil
}
