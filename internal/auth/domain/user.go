package domain

const (
	RoleStudent    = "STUDENT"
	RoleUniversity = "UNIVERSITY"
	RoleEmployer   = "EMPLOYER"
	RoleAdmin      = "ADMIN"
)

type User struct {
	ID             int64   `db:"id"`
	Email          string  `db:"email"`
	HashedPassword string  `db:"hashed_password"`
	Role           string  `db:"role"`
	UID            *string `db:"uid"`
	UniversityUID  *string `db:"university_uid"`
	IsVerified     bool    `db:"is_verified"`
	IsActive       bool    `db:"is_active"`
	FullName       string  `db:"full_name"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
}

func (u User) UIDValue() string {
	if u.UID == nil {
		return ""
	}
	return *u.UID
}

func (u User) UniversityUIDValue() string {
	if u.UniversityUID == nil {
		return ""
	}
	return *u.UniversityUID
}
