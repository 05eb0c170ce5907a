package main

import (
	"nexus/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for ad-hoc reporting tools. The service repositories use plain GORM.
func main() {
	models := []any{
		model.UserModel{},
		model.AddressModel{},
		model.VendorModel{},
		model.ProductModel{},
		model.ServiceProviderModel{},
		model.ServicePackageModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.DeliveryTaskModel{},
		model.RiderApplicationModel{},
		model.RiderProfileModel{},
		model.BoostPackageModel{},
		model.ActiveRiderBoostModel{},
		model.TransactionModel{},
		model.PayoutRequestModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
		model.JobModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
