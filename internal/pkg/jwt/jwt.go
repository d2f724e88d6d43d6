package jwt

import "github.com/go-chi/jwtauth/v5"

// Service verifies access tokens issued by the identity provider. Token
// minting lives outside this repository; the payroll backend only needs the
// verified claims to know which organization and actor a request belongs to.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type jwtService struct {
	auth *jwtauth.JWTAuth
}

func NewJWTService(secret string) Service {
	return &jwtService{auth: jwtauth.New("HS256", []byte(secret), nil)}
}

func (s *jwtService) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}
