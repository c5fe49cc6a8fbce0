package dto

type UniversityRegisterRequest struct {
	UniversityId   string `json:"universityId" validate:"required"`
	UniversityName string `json:"universityName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

type UniversityUpdateRequest struct {
	UniversityName *string `json:"universityName"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
}

type UniversityFilter struct {
	Verified *bool `query:"verified"`
}
