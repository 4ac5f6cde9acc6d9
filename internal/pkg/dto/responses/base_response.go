package responses

type ResponseDTO struct {
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Error     bool        `json:"error"`
	Timestamp string      `json:"timestamp"`
}
