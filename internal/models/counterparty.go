package models

// DriverInfo carries the role-specific details shown when paying a driver.
type DriverInfo struct {
	VehicleType string  `json:"vehicle_type,omitempty"`
	PlateNumber string  `json:"plate_number,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// CounterpartyIdentity is the resolved other party of a payment or transfer.
// It lives only for the duration of the current flow and is never persisted.
type CounterpartyIdentity struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Username    string      `json:"username,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	Driver      *DriverInfo `json:"driver,omitempty"`
}
