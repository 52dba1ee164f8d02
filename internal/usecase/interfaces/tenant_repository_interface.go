package interfaces

import (
	"context"
	"propertyhub/internal/domain/entities"
)

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context, status entities.TenantStatus) ([]entities.Tenant, error)
	Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	Delete(ctx context.Context, id string) (bool, error)
}
