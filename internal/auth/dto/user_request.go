package dto

type RegisterRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	FullName          string `json:"fullName" validate:"required"`
	Role              string `json:"role" validate:"required"`
	UniversityUid     string `json:"universityUid"`
	UniversityName    string `json:"universityName"`
	UniversityAddress string `json:"universityAddress"`
	UniversityPhone   string `json:"universityPhone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FullName      *string `json:"fullName"`
	Role          *string `json:"role"`
	IsVerified    *bool   `json:"isVerified"`
	IsActive      *bool   `json:"isActive"`
	UniversityUid *string `json:"universityUid"`
}

type UserFilter struct {
	Page   int    `query:"page"`
	Size   int    `query:"size"`
	Search string `query:"search"`
	Role   string `query:"role"`
}
