package request

type LoginRequest struct {
	Username string `validate:"required,max=50"`
	Password string `validate:"required"`
}

// ClientMeta describes the browser a session is issued to.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}
