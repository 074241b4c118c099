package response

import (
	"time"

	"renovation-tracker/internal/data/entity"
)

type AuthResponse struct {
	UserID    string
	Username  string
	Role      entity.UserRole
	Token     string
	ExpiresAt time.Time
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
