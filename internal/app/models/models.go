package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent       RoleType = "student"
	RoleCollege       RoleType = "college"
	RoleCollegeMember RoleType = "college_member"
	RoleCompany       RoleType = "company"
)

// PlacedStatus marks whether a placement record represents a placed student
type PlacedStatus string

const (
	PlacedYes PlacedStatus = "Yes"
	PlacedNo  PlacedStatus = "No"
)

// JobStatus is the lifecycle state of a job drive
type JobStatus string

const (
	JobStatusOpen         JobStatus = "Open"
	JobStatusClosed       JobStatus = "Closed"
	JobStatusInterviewing JobStatus = "Interviewing"
)

// PartnershipStatus is the lifecycle state of a college-company connection
type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "Pending"
	PartnershipActive   PartnershipStatus = "Active"
	PartnershipRejected PartnershipStatus = "Rejected"
)

// UnplacedSentinel is stored for company name and job profile when an
// unplaced row arrives with those cells blank.
const UnplacedSentinel = "Unplaced"
