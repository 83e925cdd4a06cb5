package models

// OwedDriver is the raw /payout/drivers-owed row.
type OwedDriver struct {
	DriverID        ID        `json:"driverId"`
	DriverName      string    `json:"driverName"`
	BankName        string    `json:"bankName"`
	AccountNumber   string    `json:"accountNumber"`
	ExpectedEarning Amount    `json:"expectedEarning"`
	Trips           Count     `json:"trips"`
	LastTripDate    Timestamp `json:"lastTripDate"`
	RideIDs         []int64   `json:"rideIds"`
}

// PayoutDriver is a driver owed money together with the unpaid rides a
// mark-as-paid action must reference.
type PayoutDriver struct {
	ID            ID
	Name          string
	BankName      string
	AccountNumber string
	AmountOwed    Amount
	TripCount     Count
	LastTripDate  Timestamp
	RideIDs       []int64
}

// PayoutDriver normalises the API row into the shape the payouts screen uses.
func (o OwedDriver) PayoutDriver() PayoutDriver {
	return PayoutDriver{
		ID:            o.DriverID,
		Name:          o.DriverName,
		BankName:      o.BankName,
		AccountNumber: o.AccountNumber,
		AmountOwed:    o.ExpectedEarning,
		TripCount:     o.Trips,
		LastTripDate:  o.LastTripDate,
		RideIDs:       o.RideIDs,
	}
}

// PaymentHistory records a completed payout. It is never modified client-side.
type PaymentHistory struct {
	DriverID        ID        `json:"driverId"`
	DriverName      string    `json:"driverName"`
	Amount          Amount    `json:"amount"`
	MarkedAt        Timestamp `json:"markedAt"`
	PayoutID        ID        `json:"payoutId"`
	PayoutReference string    `json:"payoutReference"`
	Status          string    `json:"status"`
}

// MarkPaidInput is the body of POST /payout/mark-paid.
type MarkPaidInput struct {
	DriverID string  `json:"driverId" validate:"required"`
	RideIDs  []int64 `json:"rideIds" validate:"required,min=1"`
}
