package model

import "time"

type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityPending ActivityStatus = "pending"
	ActivityError   ActivityStatus = "error"
)

// AdminDashboardData summarises onboarding across all agents.
type AdminDashboardData struct {
	TotalAgents         int            `json:"totalAgents"`
	CompletedOnboarding int            `json:"completedOnboarding"`
	InProgress          int            `json:"inProgress"`
	PendingDocuments    int            `json:"pendingDocuments"`
	RecentActivity      []Activity     `json:"recentActivity"`
	CompletionRate      float64        `json:"completionRate"`
	MonthlyStats        []MonthlyStats `json:"monthlyStats"`
}

type Activity struct {
	ID        string         `json:"id"`
	AgentName string         `json:"agentName"`
	Action    string         `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	Status    ActivityStatus `json:"status"`
}

type MonthlyStats struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Started   int    `json:"started"`
	Dropped   int    `json:"dropped"`
}
