package user

import (
	"fmt"
	"strconv"
	"strings"
)

// User is one parsed CSV row. ID is assigned by the store on the first
// successful insert and is zero before that.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Age       int
	Email     string
	FileName  string
}

// NewUser builds a record from raw CSV fields. Age must parse as an integer;
// everything else is taken as-is after trimming.
func NewUser(firstName, lastName, rawAge, email, fileName string) (User, error) {
	age, err := strconv.Atoi(strings.TrimSpace(rawAge))
	if err != nil {
		return User{}, fmt.Errorf("%w: %q", ErrInvalidAge, rawAge)
	}

	return User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Age:       age,
		Email:     strings.TrimSpace(email),
		FileName:  fileName,
	}, nil
}
