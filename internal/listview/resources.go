package listview

import (
	"strconv"
	"time"

	"commuta_admin/internal/format"
	"commuta_admin/internal/models"
)

func num(a models.Amount) string { return strconv.FormatFloat(float64(a), 'f', -1, 64) }
func cnt(c models.Count) string  { return strconv.Itoa(int(c)) }

var Riders = Spec[models.Rider]{
	Resource: "riders",
	PageSize: 12,
	SearchFields: func(r models.Rider) []string {
		return []string{r.Name, r.EmailAddress, r.PhoneNumber}
	},
	TimeField: func(r models.Rider) time.Time { return r.CreatedAt.Time() },
	Columns: []Column[models.Rider]{
		{"Rider ID", func(r models.Rider) string { return r.ID.String() }},
		{"Name", func(r models.Rider) string { return r.Name }},
		{"Email", func(r models.Rider) string { return r.EmailAddress }},
		{"Phone", func(r models.Rider) string { return r.PhoneNumber }},
		{"Status", func(r models.Rider) string { return format.Choose(r.IsActive.Bool(), "Active", "Inactive") }},
		{"Phone Verified", func(r models.Rider) string { return format.YesNo(r.IsPhoneVerified.Bool()) }},
		{"Email Verified", func(r models.Rider) string { return format.YesNo(r.IsEmailVerified.Bool()) }},
		{"Gender", func(r models.Rider) string { return r.Gender }},
		{"Signup Date", func(r models.Rider) string { return r.CreatedAt.String() }},
		{"Total Rides", func(r models.Rider) string { return cnt(r.TotalRides) }},
		{"Completed Rides", func(r models.Rider) string { return cnt(r.CompletedRides) }},
		{"Cancelled Rides", func(r models.Rider) string { return cnt(r.CancelledRides) }},
		{"Average Rating", func(r models.Rider) string { return num(r.AverageRating) }},
	},
}

var Drivers = Spec[models.Driver]{
	Resource: "drivers",
	PageSize: 12,
	SearchFields: func(d models.Driver) []string {
		return []string{d.Name, d.EmailAddress, d.PhoneNumber}
	},
	TimeField: func(d models.Driver) time.Time { return d.CreatedAt.Time() },
	Columns: []Column[models.Driver]{
		{"Driver ID", func(d models.Driver) string { return d.ID.String() }},
		{"Name", func(d models.Driver) string { return d.Name }},
		{"Phone Number", func(d models.Driver) string { return d.PhoneNumber }},
		{"Email Address", func(d models.Driver) string { return d.EmailAddress }},
		{"Gender", func(d models.Driver) string { return d.Gender }},
		{"Status", func(d models.Driver) string { return format.Choose(d.IsActive.Bool(), "Active", "Inactive") }},
		{"Phone Verified", func(d models.Driver) string { return format.YesNo(d.IsPhoneVerified.Bool()) }},
		{"Email Verified", func(d models.Driver) string { return format.YesNo(d.IsEmailVerified.Bool()) }},
		{"Vehicle Type", func(d models.Driver) string { return d.VehicleType }},
		{"Vehicle Color", func(d models.Driver) string { return d.VehicleColor }},
		{"License Plate", func(d models.Driver) string { return d.LicensePlate }},
		{"Online Status", func(d models.Driver) string { return format.Choose(d.IsOnline.Bool(), "Online", "Offline") }},
		{"Available Status", func(d models.Driver) string { return format.Choose(d.IsAvailable.Bool(), "Available", "Unavailable") }},
		{"Last Online", func(d models.Driver) string { return d.LastOnline.String() }},
		{"Current Latitude", func(d models.Driver) string { return d.CurrentLat }},
		{"Current Longitude", func(d models.Driver) string { return d.CurrentLng }},
		{"Created At", func(d models.Driver) string { return d.CreatedAt.String() }},
		{"Updated At", func(d models.Driver) string { return d.UpdatedAt.String() }},
		{"Total Rides", func(d models.Driver) string { return cnt(d.TotalRides) }},
		{"Completed Rides", func(d models.Driver) string { return cnt(d.CompletedRides) }},
		{"Cancelled Rides", func(d models.Driver) string { return cnt(d.CancelledRides) }},
		{"Average Rating", func(d models.Driver) string { return num(d.AverageRating) }},
		{"Total Earnings", func(d models.Driver) string { return num(d.TotalEarnings) }},
	},
}

var Trips = Spec[models.Trip]{
	Resource: "trips",
	PageSize: 10,
	SearchFields: func(t models.Trip) []string {
		return []string{t.RideID.String(), t.RiderName, t.DriverName}
	},
	TimeField: func(t models.Trip) time.Time { return t.CreatedAt.Time() },
	Columns: []Column[models.Trip]{
		{"Ride ID", func(t models.Trip) string { return t.RideID.String() }},
		{"Type", func(t models.Trip) string { return t.RideType }},
		{"Date", func(t models.Trip) string { return t.CreatedAt.String() }},
		{"Rider", func(t models.Trip) string { return t.RiderName }},
		{"Driver", func(t models.Trip) string { return t.DriverName }},
		{"Ride Status", func(t models.Trip) string { return t.RideStatus }},
		{"Payment Status", func(t models.Trip) string { return t.PaymentStatus }},
		{"Payment Method", func(t models.Trip) string { return t.PaymentMethod }},
		{"Pickup", func(t models.Trip) string { return t.PickupAddress }},
		{"Dropoff", func(t models.Trip) string { return t.DropoffAddress }},
		{"Fare", func(t models.Trip) string { return num(t.FinalFare) }},
		{"Driver Earnings", func(t models.Trip) string { return num(t.ExpectedEarning) }},
	},
}

var ForumUsers = Spec[models.ForumUser]{
	Resource: "forum-users",
	PageSize: 20,
	SearchFields: func(u models.ForumUser) []string {
		return []string{u.Name, u.EmailAddress}
	},
	TimeField: func(u models.ForumUser) time.Time { return u.CreatedAt.Time() },
	Columns: []Column[models.ForumUser]{
		{"User ID", func(u models.ForumUser) string { return u.UserID.String() }},
		{"Name", func(u models.ForumUser) string { return u.Name }},
		{"Email", func(u models.ForumUser) string { return u.EmailAddress }},
		{"Active", func(u models.ForumUser) string { return format.YesNo(u.IsActive.Bool()) }},
		{"Email Verified", func(u models.ForumUser) string { return format.YesNo(u.IsEmailVerified.Bool()) }},
		{"Communities Joined", func(u models.ForumUser) string { return cnt(u.TotalCommunities) }},
		{"Posts Count", func(u models.ForumUser) string { return cnt(u.TotalPosts) }},
		{"Signup Date", func(u models.ForumUser) string { return u.CreatedAt.String() }},
	},
}

var ForumPosts = Spec[models.ForumPost]{
	Resource: "forum-posts",
	PageSize: 20,
	SearchFields: func(p models.ForumPost) []string {
		return []string{p.PostTitle, p.AuthorName}
	},
	TimeField: func(p models.ForumPost) time.Time { return p.CreatedAt.Time() },
	Columns: []Column[models.ForumPost]{
		{"Post ID", func(p models.ForumPost) string { return p.PostID.String() }},
		{"Community", func(p models.ForumPost) string { return p.CommunityName }},
		{"Title", func(p models.ForumPost) string { return p.PostTitle }},
		{"Author", func(p models.ForumPost) string { return p.AuthorName }},
		{"Created Date", func(p models.ForumPost) string { return p.CreatedAt.String() }},
		{"Likes", func(p models.ForumPost) string { return cnt(p.LikesCount) }},
		{"Comments", func(p models.ForumPost) string { return cnt(p.CommentsCount) }},
	},
}

var Contacts = Spec[models.Contact]{
	Resource: "contacts",
	PageSize: 10,
	SearchFields: func(c models.Contact) []string {
		return []string{c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Message}
	},
	TimeField: func(c models.Contact) time.Time { return c.CreatedAt.Time() },
	Columns: []Column[models.Contact]{
		{"ID", func(c models.Contact) string { return c.ID.String() }},
		{"First Name", func(c models.Contact) string { return c.FirstName }},
		{"Last Name", func(c models.Contact) string { return c.LastName }},
		{"Email", func(c models.Contact) string { return c.Email }},
		{"Phone", func(c models.Contact) string { return c.PhoneNumber }},
		{"Alt Phone", func(c models.Contact) string { return c.AltPhoneNumber }},
		{"Alt Email", func(c models.Contact) string { return c.AltEmail }},
		{"Category", func(c models.Contact) string { return c.Category }},
		{"Message", func(c models.Contact) string { return c.Message }},
		{"Created At", func(c models.Contact) string { return c.CreatedAt.String() }},
	},
}

var DriversOwed = Spec[models.PayoutDriver]{
	Resource: "drivers-owed",
	PageSize: 20,
	SearchFields: func(p models.PayoutDriver) []string {
		return []string{p.Name, p.BankName, p.AccountNumber}
	},
	TimeField: func(p models.PayoutDriver) time.Time { return p.LastTripDate.Time() },
	Columns: []Column[models.PayoutDriver]{
		{"Driver ID", func(p models.PayoutDriver) string { return p.ID.String() }},
		{"Driver Name", func(p models.PayoutDriver) string { return p.Name }},
		{"Bank Name", func(p models.PayoutDriver) string { return p.BankName }},
		{"Account Number", func(p models.PayoutDriver) string { return p.AccountNumber }},
		{"Amount Owed", func(p models.PayoutDriver) string { return num(p.AmountOwed) }},
		{"Trip Count", func(p models.PayoutDriver) string { return cnt(p.TripCount) }},
		{"Last Trip Date", func(p models.PayoutDriver) string { return format.ISODate(p.LastTripDate.String()) }},
	},
}

var PaymentHistory = Spec[models.PaymentHistory]{
	Resource: "payment-history",
	PageSize: 20,
	SearchFields: func(p models.PaymentHistory) []string {
		return []string{p.DriverName, p.PayoutReference, p.Status}
	},
	TimeField: func(p models.PaymentHistory) time.Time { return p.MarkedAt.Time() },
	Columns: []Column[models.PaymentHistory]{
		{"Payment ID", func(p models.PaymentHistory) string { return p.DriverID.String() }},
		{"Driver Name", func(p models.PaymentHistory) string { return p.DriverName }},
		{"Amount Paid", func(p models.PaymentHistory) string { return num(p.Amount) }},
		{"Payment Date", func(p models.PaymentHistory) string { return p.MarkedAt.String() }},
		{"Reference", func(p models.PaymentHistory) string { return p.PayoutReference }},
		{"Status", func(p models.PaymentHistory) string { return p.Status }},
	},
}
