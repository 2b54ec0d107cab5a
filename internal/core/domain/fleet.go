package domain

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "ACTIVE"
	VehicleMaintenance VehicleStatus = "MAINTENANCE"
	VehicleRetired     VehicleStatus = "RETIRED"
)

// Vehicle is one unit of the operator's fleet.
type Vehicle struct {
	VehicleID    string        `json:"vehicleID"` // Primary Key (UUID)
	Plate        string        `json:"plate"`
	Model        string        `json:"model"`
	Brand        string        `json:"brand"`
	Year         int           `json:"year"`
	Capacity     int           `json:"capacity"`
	Status       VehicleStatus `json:"status"`
	DriverName   string        `json:"driverName,omitempty"`
	DriverPhone  string        `json:"driverPhone,omitempty"`
	Observations string        `json:"observations,omitempty"`
	AuditFields
}

// Destination is an operated region with its default quoting currency.
type Destination struct {
	DestinationID string `json:"destinationID"` // Primary Key (UUID)
	Name          string `json:"name"`
	Country       string `json:"country"`
	CurrencyCode  string `json:"currencyCode"`
	Active        bool   `json:"active"`
	AuditFields
}
