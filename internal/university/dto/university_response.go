package dto

type UniversityResponse struct {
	UniversityId   string `json:"universityId"`
	UniversityName string `json:"universityName"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Verified       bool   `json:"verified"`
	PublicKey      string `json:"publicKey"`
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
}

type VerifyUniversityResponse struct {
	UniversityId string `json:"universityId"`
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
}

type PublicKeyResponse struct {
	UniversityId   string `json:"universityId"`
	UniversityName string `json:"universityName"`
	PublicKey      string `json:"publicKey"`
}
