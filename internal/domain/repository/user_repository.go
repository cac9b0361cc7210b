package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// AddPoints suma puntos al acumulado del usuario (usado al confirmar un pedido).
	AddPoints(userID string, points int64) error
}
