package domain

import "time"

// SiteVisit — просмотр страницы витрины.
type SiteVisit struct {
	ID         int64
	VisitDate  time.Time
	PageViewed string
	IPAddress  string // пустая строка — адрес неизвестен
	UserAgent  string
}

func NewSiteVisit(page, ip, userAgent string, visitDate time.Time) *SiteVisit {
	return &SiteVisit{
		VisitDate:  visitDate,
		PageViewed: page,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
}
