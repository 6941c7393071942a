package api

import "go-barber-api/internal/model"

// swagger:model api.AvatarResponse
type AvatarResponse struct {
	ID   int    `json:"id" example:"3"`
	Path string `json:"path" example:"3f2c9e.jpg"`
	URL  string `json:"url" example:"http://localhost:8080/files/3f2c9e.jpg"`
}

// swagger:model api.ProviderResponse
type ProviderResponse struct {
	ID     int             `json:"id" example:"2"`
	Name   string          `json:"name" example:"Diego Fernandes"`
	Email  string          `json:"email,omitempty" example:"diego@gobarber.com"`
	Avatar *AvatarResponse `json:"avatar"`
}

// NewProviderResponse 組出服務提供者資訊，filesURL 為頭像的 base URL
func NewProviderResponse(u *model.User, filesURL string) ProviderResponse {
	resp := ProviderResponse{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.Avatar != nil {
		resp.Avatar = &AvatarResponse{
			ID:   u.Avatar.ID,
			Path: u.Avatar.Path,
			URL:  u.Avatar.URL(filesURL),
		}
	}
	return resp
}
