package api

// ErrorResponse 所有錯誤回應的格式
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Validation Fails"`
}
