package api

import "context"

// AdminDashboardOverview retrieves the admin dashboard summary
func (c *Client) AdminDashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	var overview DashboardOverview
	if err := c.get(ctx, AdminDashboardOverviewPath, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
