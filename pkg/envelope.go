package pkg

// Envelope is the body shape of every JSON response: { status, message?, data? }.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(status int, data any) Envelope {
	return Envelope{Status: status, Data: data}
}
