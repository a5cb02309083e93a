package domain

import "time"

// Worklog is a single time entry logged against a Jira issue.
type Worklog struct {
	ID               string    `json:"id"`
	IssueKey         string    `json:"issueKey"`
	IssueSummary     string    `json:"issueSummary"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	Started          time.Time `json:"started"`
}

// WorklogSummary aggregates worklogs over a date range.
type WorklogSummary struct {
	From         string         `json:"from"` // YYYY-MM-DD
	To           string         `json:"to"`
	TotalSeconds int            `json:"totalSeconds"`
	PerDay       map[string]int `json:"perDay"` // YYYY-MM-DD → seconds
	Entries      []Worklog      `json:"entries"`
}

// DailyTargetSeconds is the amount of time expected to be logged per day.
const DailyTargetSeconds = 8 * 60 * 60
