package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura a descontar del punto de venta.
// El encabezado de la factura (cliente, totales) lo maneja la capa CRUD externa;
// este núcleo solo necesita producto y cantidad.
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// FulfillInvoiceRequest body para POST /api/invoices/fulfill.
type FulfillInvoiceRequest struct {
	Items []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ShortageItemResponse detalle de un ítem rechazado por stock insuficiente.
type ShortageItemResponse struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Location  string `json:"location"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// FulfillInvoiceResponse productos actualizados tras descontar la factura.
type FulfillInvoiceResponse struct {
	Products []ProductStockResponse `json:"products"`
}
