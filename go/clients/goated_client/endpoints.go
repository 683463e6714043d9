package goated_client

const (
	// Base URL
	BaseURL = "https://api.goated.com"

	// API Endpoints
	ReferralLeaderboardEndpoint = "/user/affiliate/referral-leaderboard"

	// Affiliate codes
	DefaultAffiliateCode = "OQID5MA"

	// Headers
	AcceptHeader    = "Accept"
	JSONContentType = "application/json"
)
