package supabase

import (
	"fmt"
	"strings"
	"time"

	"adstudio-backend/internal/models"
)

// GetDashboardStats aggregates campaign counts plus derived totals for
// the dashboard header cards.
func (d *DatabaseClient) GetDashboardStats(userID string) (*models.DashboardStatsResponse, error) {
	var stats models.DashboardStatsResponse
	err := d.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE final_media_url IS NOT NULL),
			COALESCE(SUM(jsonb_array_length(studio_messages)), 0)
		FROM campaigns
		WHERE user_id = $1
	`, userID).Scan(
		&stats.TotalCampaigns, &stats.CompletedCampaigns, &stats.DraftCampaigns,
		&stats.InProgressCampaigns, &stats.TotalGenerations, &stats.TotalMessages,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}

// GetStyleDistribution counts campaigns per visual style. Campaigns
// with no style chosen yet are reported under "unset".
func (d *DatabaseClient) GetStyleDistribution(userID string) ([]models.StyleCount, error) {
	rows, err := d.db.Query(`
		SELECT COALESCE(visual_style, 'unset'), COUNT(*)
		FROM campaigns
		WHERE user_id = $1
		GROUP BY COALESCE(visual_style, 'unset')
		ORDER BY COUNT(*) DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get style distribution: %w", err)
	}
	defer rows.Close()

	var counts []models.StyleCount
	for rows.Next() {
		var sc models.StyleCount
		if err := rows.Scan(&sc.Style, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan style count: %w", err)
		}
		counts = append(counts, sc)
	}

	return counts, nil
}

// GetDailyActivity returns campaign creation counts for the last seven
// days. Days with no activity are filled in with zero so the chart has
// a continuous axis.
func (d *DatabaseClient) GetDailyActivity(userID string) ([]models.DailyCount, error) {
	rows, err := d.db.Query(`
		SELECT created_at::date, COUNT(*)
		FROM campaigns
		WHERE user_id = $1 AND created_at >= NOW() - INTERVAL '7 days'
		GROUP BY created_at::date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activity: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		byDate[date.Format("2006-01-02")] = count
	}

	counts := make([]models.DailyCount, 0, 7)
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		counts = append(counts, models.DailyCount{Date: date, Count: byDate[date]})
	}

	return counts, nil
}

func (d *DatabaseClient) GetRecentCampaigns(userID string, limit int) ([]models.RecentCampaign, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := d.db.Query(`
		SELECT id, brand_name, status, COALESCE(visual_style, ''), current_step,
			final_media_url IS NOT NULL, created_at
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent campaigns: %w", err)
	}
	defer rows.Close()

	var recent []models.RecentCampaign
	for rows.Next() {
		var rc models.RecentCampaign
		if err := rows.Scan(&rc.ID, &rc.BrandName, &rc.Status, &rc.VisualStyle,
			&rc.CurrentStep, &rc.HasMedia, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent campaign: %w", err)
		}
		recent = append(recent, rc)
	}

	return recent, nil
}

// GetPortfolio returns campaigns that produced a final asset. Whether
// the asset is a video is inferred from its URL.
func (d *DatabaseClient) GetPortfolio(userID string) ([]models.PortfolioItem, error) {
	rows, err := d.db.Query(`
		SELECT id, brand_name, COALESCE(visual_style, ''), status, final_media_url, created_at
		FROM campaigns
		WHERE user_id = $1 AND final_media_url IS NOT NULL
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		var item models.PortfolioItem
		if err := rows.Scan(&item.ID, &item.BrandName, &item.VisualStyle,
			&item.Status, &item.MediaURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		item.IsVideo = IsVideoURL(item.MediaURL)
		items = append(items, item)
	}

	return items, nil
}

// IsVideoURL reports whether a media URL looks like a video asset.
func IsVideoURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, ".mp4") || strings.Contains(lower, "video")
}
