package model

import "time"

// Usuario is an operator account. PasswordHash is bcrypt and never serialized
// to clients (responses use dto.UsuarioResponse).
type Usuario struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	PasswordHash string    `json:"password_hash"`
	Ativo        bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
}
