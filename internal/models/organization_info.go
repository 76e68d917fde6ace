package models

import "time"

// OrganizationInfo holds company context gathered while qualifying an
// opportunity. 1:1 with Lead, keyed by lead id.
type OrganizationInfo struct {
	ID                int64     `json:"id"`
	LeadID            int64     `json:"lead_id"`
	EmployeeCount     *int      `json:"employee_count,omitempty"`
	AnnualRevenue     *float64  `json:"annual_revenue,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	DecisionMaker     string    `json:"decision_maker,omitempty"`
	DecisionMakerRole string    `json:"decision_maker_role,omitempty"`
	CurrentSolution   string    `json:"current_solution,omitempty"`
	PainPoints        string    `json:"pain_points,omitempty"`
	Budget            *float64  `json:"budget,omitempty"`
	Timeline          string    `json:"timeline,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
