package handlers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

func validateWarehouse(req WarehouseRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if req.CapacityM3 < 0 {
		errs["capacity_m3"] = "Capacity must not be negative"
	}
	return errs
}

func validateSKU(req SKURequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Code) == "" {
		errs["code"] = "Code is required"
	}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if req.UnitCost.LessThan(decimal.Zero) {
		errs["unit_cost"] = "Unit cost must not be negative"
	}
	return errs
}

func validateInventory(req InventoryRequest) map[string]string {
	errs := make(map[string]string)
	if req.SKUID <= 0 {
		errs["sku_id"] = "SKU id is required"
	}
	if req.WarehouseID <= 0 {
		errs["warehouse_id"] = "Warehouse id is required"
	}
	if req.QuantityAvailable < 0 {
		errs["quantity_available"] = "Quantity must not be negative"
	}
	if req.QuantityReserved < 0 {
		errs["quantity_reserved"] = "Reserved quantity must not be negative"
	}
	return errs
}

func validateMovement(req MovementRequest) map[string]string {
	errs := make(map[string]string)
	if req.SKUID <= 0 {
		errs["sku_id"] = "SKU id is required"
	}
	if req.WarehouseID <= 0 {
		errs["warehouse_id"] = "Warehouse id is required"
	}
	if req.Quantity <= 0 {
		errs["quantity"] = "Quantity must be greater than zero"
	}
	if t := models.MovementType(req.Type); t != models.MovementIn && t != models.MovementOut {
		errs["type"] = "Type must be IN or OUT"
	}
	return errs
}

func validateOrder(req OrderRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Number) == "" {
		errs["number"] = "Order number is required"
	}
	if req.CustomerID <= 0 {
		errs["customer_id"] = "Customer id is required"
	}
	if !models.OrderStatus(req.Status).Valid() {
		errs["status"] = "Unknown order status"
	}
	if req.TotalValue.LessThan(decimal.Zero) {
		errs["total_value"] = "Total value must not be negative"
	}
	return errs
}

func validateCustomer(req CustomerRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	return errs
}

func validateSupplier(req SupplierRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	return errs
}
