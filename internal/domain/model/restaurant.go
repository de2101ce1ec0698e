package model

// Restaurant is the directory projection the order service needs: existence
// and whether the restaurant currently accepts orders.
type Restaurant struct {
	ID     int64
	IsOpen bool
}
