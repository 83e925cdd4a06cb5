package models

// Rider is a passenger account as returned by /riders.
type Rider struct {
	ID              ID        `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phoneNumber"`
	EmailAddress    string    `json:"emailAddress"`
	Gender          string    `json:"gender"`
	IsActive        Flag      `json:"isActive"`
	IsPhoneVerified Flag      `json:"isPhoneVerified"`
	IsEmailVerified Flag      `json:"isEmailVerified"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
	TotalRides      Count     `json:"totalRides"`
	CompletedRides  Count     `json:"completedRides"`
	CancelledRides  Count     `json:"cancelledRides"`
	AverageRating   Amount    `json:"averageRating"`
}
