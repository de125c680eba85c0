package usecase

import (
	"go.uber.org/fx"

	"github.com/nafru/exportdesk/internal/config"
	"github.com/nafru/exportdesk/internal/domain/repository"
	pkgAuth "github.com/nafru/exportdesk/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	newCustomerUseCase,
	newOrderUseCase,
	NewShipmentUseCase,
	NewDocumentUseCase,
	NewProductUseCase,
)

func newAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, cfg *config.Config) *AuthUseCase {
	return NewAuthUseCase(users, hasher, strategy, cfg.DefaultLanguage)
}

func newCustomerUseCase(customers repository.CustomerRepository, cfg *config.Config) *CustomerUseCase {
	return NewCustomerUseCase(customers, CustomerDefaults{
		Country:  cfg.DefaultCountry,
		Language: cfg.DefaultLanguage,
	})
}

func newOrderUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, cfg *config.Config) *OrderUseCase {
	return NewOrderUseCase(orders, customers, cfg.DefaultCurrency)
}
