package model

type GeometryRequestBody struct {
	Dir  string `json:"dir"`
	Song string `json:"song"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
