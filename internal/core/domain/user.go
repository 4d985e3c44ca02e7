package domain

type User struct {
	ID    uint64
	Name  string
	Phone *string
}

func (u *User) HasPhone() bool {
	return u != nil && u.Phone != nil && *u.Phone != ""
}
