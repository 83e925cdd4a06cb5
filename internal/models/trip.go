package models

// Trip is a ride record. Rider and driver are denormalised; no join is done here.
type Trip struct {
	RideID              ID        `json:"rideId"`
	RideType            string    `json:"rideType"`
	DriverName          string    `json:"driverName"`
	DriverPhone         string    `json:"driverPhone"`
	DriverVehicleNumber string    `json:"driverVehicleNumber"`
	RiderName           string    `json:"riderName"`
	RiderEmail          string    `json:"riderEmail"`
	RiderPhone          string    `json:"riderPhone"`
	PickupAddress       string    `json:"pickupAddress"`
	DropoffAddress      string    `json:"dropoffAddress"`
	RideStatus          string    `json:"rideStatus"`
	FinalFare           Amount    `json:"finalFare"`
	ExpectedEarning     Amount    `json:"expectedEarning"`
	ServiceCharge       Amount    `json:"serviceCharge"`
	CreatedAt           Timestamp `json:"createdAt"`
	TripDate            Timestamp `json:"tripDate"`
	PaymentStatus       string    `json:"paymentStatus"`
	PaymentMethod       string    `json:"paymentMethod"`
	PaymentChannel      string    `json:"paymentChannel"`
}

// Ride types and statuses the trip log filters on.
const (
	RideTypeInstant   = "Instant"
	RideTypeScheduled = "Scheduled"

	RideStatusCompleted = "COMPLETED"
	RideStatusCancelled = "CANCELLED"
	RideStatusPending   = "PENDING"
)
