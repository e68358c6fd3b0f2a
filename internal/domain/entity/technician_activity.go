package entity

import "time"

// TechnicianActivity es una entrada de bitácora que atribuye una cantidad de
// trabajo sobre un producto a un técnico. Se crea una vez por traslado que nombre
// un técnico y nunca se muta. ProductName va desnormalizado para reportes.
type TechnicianActivity struct {
	ID             string
	TechnicianName string
	ActivityType   string
	ProductID      string
	ProductName    string
	Quantity       int
	TransferID     *string // referencia al traslado origen, si aplica
	Notes          string
	WorkDate       time.Time
	CreatedAt      time.Time
}
