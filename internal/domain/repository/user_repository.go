package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Upsert lo usa el arranque para sembrar el administrador desde la configuración.
type UserRepository interface {
	GetByUsername(username string) (*entity.User, error)
	Upsert(u *entity.User) error
}
