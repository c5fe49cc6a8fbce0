package dto

type AuthData struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Role          string `json:"role"`
	Token         string `json:"token"`
	Uid           string `json:"uid"`
	UniversityUid string `json:"universityUid,omitempty"`
}

type UserInfoResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Role          string `json:"role"`
	Uid           string `json:"uid"`
	UniversityUid string `json:"universityUid,omitempty"`
}

type UserDto struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Role          string `json:"role"`
	IsVerified    bool   `json:"isVerified"`
	IsActive      bool   `json:"isActive"`
	Uid           string `json:"uid"`
	UniversityUid string `json:"universityUid,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type PaginatedUsersResponse struct {
	Content       []UserDto `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

type UniversityInfo struct {
	Uid   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
