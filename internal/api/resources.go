package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"commuta_admin/internal/models"
)

func (c *Client) Riders(ctx context.Context) ([]models.Rider, error) {
	return fetch[[]models.Rider](ctx, c, "/riders", nil, "Failed to fetch riders")
}

func (c *Client) Rider(ctx context.Context, id string) (models.Rider, error) {
	return fetch[models.Rider](ctx, c, "/riders/"+url.PathEscape(id), nil, "Failed to fetch rider")
}

func (c *Client) Drivers(ctx context.Context) ([]models.Driver, error) {
	return fetch[[]models.Driver](ctx, c, "/drivers", nil, "Failed to fetch drivers")
}

func (c *Client) Driver(ctx context.Context, id string) (models.Driver, error) {
	return fetch[models.Driver](ctx, c, "/drivers/"+url.PathEscape(id), nil, "Failed to fetch driver")
}

func (c *Client) Trips(ctx context.Context) ([]models.Trip, error) {
	return fetch[[]models.Trip](ctx, c, "/trips", nil, "Failed to fetch trips")
}

func (c *Client) Trip(ctx context.Context, id string) (models.Trip, error) {
	return fetch[models.Trip](ctx, c, "/trips/"+url.PathEscape(id), nil, "Failed to fetch trip")
}

func (c *Client) ForumUsers(ctx context.Context) ([]models.ForumUser, error) {
	return fetch[[]models.ForumUser](ctx, c, "/forum-users", nil, "Failed to fetch forum users")
}

func (c *Client) ForumActivity(ctx context.Context) ([]models.ForumPost, error) {
	return fetch[[]models.ForumPost](ctx, c, "/forum-activity", nil, "Failed to fetch forum activities")
}

func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	return fetch[[]models.Contact](ctx, c, "/contacts", nil, "Failed to fetch contacts")
}

// DriversOwed returns the payout queue normalised to PayoutDriver.
func (c *Client) DriversOwed(ctx context.Context) ([]models.PayoutDriver, error) {
	rows, err := fetch[[]models.OwedDriver](ctx, c, "/payout/drivers-owed", nil, "Failed to fetch drivers payout")
	if err != nil {
		return nil, err
	}
	out := make([]models.PayoutDriver, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.PayoutDriver())
	}
	return out, nil
}

func (c *Client) PayoutHistory(ctx context.Context) ([]models.PaymentHistory, error) {
	return fetch[[]models.PaymentHistory](ctx, c, "/payout/history", nil, "Failed to fetch payout history")
}

// MarkPaid settles the listed rides for a driver. The call carries no
// idempotency key; a repeated submission is a repeated request.
func (c *Client) MarkPaid(ctx context.Context, in models.MarkPaidInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid mark-paid input: %w", err)
	}
	_, err := c.call(ctx, http.MethodPost, "/payout/mark-paid", nil, in, "Failed to mark payment")
	return err
}

// Summary returns platform counts and the signup trend for the last period days.
func (c *Client) Summary(ctx context.Context, period int) (models.Summary, error) {
	q := url.Values{}
	if period > 0 {
		q.Set("period", strconv.Itoa(period))
	}
	return fetch[models.Summary](ctx, c, "/summary", q, "Failed to fetch dashboard summary")
}
