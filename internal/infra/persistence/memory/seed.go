package memory

import (
	"context"
	"time"

	"acai/internal/domain/entity"
	"acai/internal/domain/repository"
	"acai/internal/errors"

	"github.com/google/uuid"
)

// seedNamespace keeps demo ids stable across restarts.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("acai:demo"))

// SeedID returns the deterministic id of a demo record.
func SeedID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key))
}

// Demo store ids.
var (
	DemoStoreMania = SeedID("store", "store1")
	DemoStorePoint = SeedID("store", "store2")
)

// DemoComponents is the default ingredient catalog.
func DemoComponents(now time.Time) []entity.CatalogItem {
	items := []struct {
		key    string
		name   string
		weight float64
		image  string
	}{
		{"1", "Leite em Pó", 15, "https://i.imgur.com/8aV3L9f.png"},
		{"2", "Castanha", 20, "https://i.imgur.com/k2H1zOf.png"},
		{"3", "Kiwi", 25, "https://i.imgur.com/gA3gA0V.png"},
		{"4", "Morango", 30, "https://i.imgur.com/7g2PK6w.png"},
		{"5", "Banana", 40, "https://i.imgur.com/Y4V4H7t.png"},
		{"6", "Granola", 20, "https://i.imgur.com/bBlB8c8.png"},
		{"7", "Leite Condensado", 15, "https://i.imgur.com/8v2iSAn.png"},
		{"8", "Mel", 10, "https://i.imgur.com/vHqL3v1.png"},
	}

	out := make([]entity.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.CatalogItem{
			ID:               SeedID("component", it.key),
			Name:             it.name,
			WeightPerServing: it.weight,
			ImageURL:         it.image,
			CreatedAt:        now,
		})
	}

	return out
}

// Seed loads the demo catalog, stores and users.
func Seed(ctx context.Context, catalog repository.CatalogRepository, stores repository.StoreRepository, users repository.UserRepository, now time.Time) error {
	components := DemoComponents(now)
	for i := range components {
		if err := catalog.Create(ctx, &components[i]); err != nil {
			return errors.Wrap(err, "seed catalog")
		}
	}

	ownerID := SeedID("user", "user1")
	demoStores := []*entity.Store{
		{
			ID:      DemoStoreMania,
			OwnerID: ownerID,
			StoreProfile: entity.StoreProfile{
				Name:         "Açaí Mania",
				CNPJ:         "12.345.678/0001-99",
				OwnerName:    "João Silva",
				OwnerPhone:   "11987654321",
				Instagram:    "@acaimania",
				State:        "São Paulo",
				City:         "São Paulo",
				Neighborhood: "Pinheiros",
				Address:      "Rua dos Pinheiros, 123",
				LogoURL:      "https://i.imgur.com/zSOOnXg.png",
			},
			Location:     &entity.Coordinates{Lat: -23.56, Lng: -46.69},
			DeliveryType: entity.DeliveryFixed,
			DeliveryFee:  5,
			PricePerKg:   40,
			Components:   components[:5],
			IsPublic:     true,
			Status:       entity.StoreStatusApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:      DemoStorePoint,
			OwnerID: SeedID("user", "owner2"),
			StoreProfile: entity.StoreProfile{
				Name:         "Point do Açaí",
				CNPJ:         "98.765.432/0001-11",
				OwnerName:    "Maria Oliveira",
				OwnerPhone:   "21912345678",
				Instagram:    "@pointdoacai",
				State:        "Rio de Janeiro",
				City:         "Rio de Janeiro",
				Neighborhood: "Copacabana",
				Address:      "Av. Atlântica, 456",
				LogoURL:      "https://i.imgur.com/n4Yn3uB.png",
			},
			Location:     &entity.Coordinates{Lat: -22.97, Lng: -43.18},
			DeliveryType: entity.DeliveryFree,
			DeliveryFee:  0,
			PricePerKg:   45.50,
			Components:   components,
			IsPublic:     true,
			Status:       entity.StoreStatusApproved,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, store := range demoStores {
		if err := stores.Create(ctx, store); err != nil {
			return errors.Wrap(err, "seed stores")
		}
	}

	storeID := DemoStoreMania
	demoUsers := []*entity.User{
		{ID: ownerID, Email: "store@owner.com", Role: entity.RoleStore, StoreID: &storeID},
		{ID: SeedID("user", "user2"), Email: "customer@test.com", Role: entity.RoleCustomer},
		{ID: SeedID("user", "user3"), Email: "admin@test.com", Role: entity.RoleAdmin},
	}
	for _, user := range demoUsers {
		user.CreatedAt, user.UpdatedAt = now, now
		if err := users.Create(ctx, user); err != nil {
			return errors.Wrap(err, "seed users")
		}
	}

	return nil
}
