package usecase

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProfileUseCase arma la página de perfil: usuario (con membresía y puntos)
// más su historial de pedidos con los puntos ganados en cada uno.
type ProfileUseCase struct {
	userRepo repository.UserRepository
	checkout *checkout.CheckoutUseCase
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(userRepo repository.UserRepository, checkoutUC *checkout.CheckoutUseCase) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo, checkout: checkoutUC}
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string, limit, offset int) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.checkout.ListOrders(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		User:   *auth.ToUserResponse(user),
		Orders: orders,
	}, nil
}
