package dto

type LoginRequestDTO struct {
	DialCode    string `json:"dial_code" example:"+221"`
	PhoneNumber string `json:"phone_number" example:"770000000"`
	PIN         string `json:"pin" example:"1234"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
