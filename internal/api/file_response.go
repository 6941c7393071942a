package api

import "go-barber-api/internal/model"

// swagger:model api.FileResponse
type FileResponse struct {
	ID   int    `json:"id" example:"3"`
	Name string `json:"name" example:"me.jpg"`
	Path string `json:"path" example:"3f2c9e.jpg"`
	URL  string `json:"url" example:"http://localhost:8080/files/3f2c9e.jpg"`
}

func NewFileResponse(f *model.File, filesURL string) FileResponse {
	return FileResponse{ID: f.ID, Name: f.Name, Path: f.Path, URL: f.URL(filesURL)}
}
