package models

import (
	"time"
)

// Visit is one logged page view. Visits are append-only: there is no
// update or delete surface for them, they only feed the stats aggregates.
// @Description A tracked page view
type Visit struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	IPAddress   string    `json:"ipAddress" gorm:"column:ip_address"`
	UserAgent   string    `json:"userAgent" gorm:"column:user_agent"`
	PageVisited string    `json:"pageVisited" gorm:"column:page_visited"`
	VisitedAt   time.Time `json:"visitedAt" gorm:"column:visited_at;autoCreateTime"`
}

func (Visit) TableName() string {
	return "visitors"
}

// VisitCreate is the request body accepted by POST /api/track-visit.
// @Description Payload for tracking a page view
type VisitCreate struct {
	Page string `json:"page" example:"/"`
}

// Stats bundles the aggregates returned by GET /api/stats.
// @Description Visitor and contact statistics
type Stats struct {
	TotalVisits    int64   `json:"totalVisits"`
	UniqueVisitors int64   `json:"uniqueVisitors"`
	TotalContacts  int64   `json:"totalContacts"`
	RecentVisits   []Visit `json:"recentVisits"`
}
