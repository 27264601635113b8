package models

import "time"

// ActivityEntry is one line of the dashboard activity feed
type ActivityEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Statistics backs the admin dashboard overview
type Statistics struct {
	TotalProjects      int             `json:"totalProjects"`
	FeaturedProjects   int             `json:"featuredProjects"`
	TotalMessages      int             `json:"totalMessages"`
	UnreadMessages     int             `json:"unreadMessages"`
	TotalSkills        int             `json:"totalSkills"`
	TotalHighlights    int             `json:"totalHighlights"`
	TotalResumes       int             `json:"totalResumes"`
	TotalDownloads     int             `json:"totalDownloads"`
	ProjectsByCategory map[string]int  `json:"projectsByCategory"`
	RecentActivity     []ActivityEntry `json:"recentActivity"`
}

// UploadedImage is returned by the image upload endpoint
type UploadedImage struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// DeleteImageRequest is the body of DELETE /upload/images
type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}
