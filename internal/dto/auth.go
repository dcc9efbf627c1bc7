package dto

// LoginReq es el cuerpo de /v1/auth/login.
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokensDTO son los tokens JWT que entrega el core.
type TokensDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
