package common

// HistoryLimit is the maximum number of activity records retained per user.
// Older entries are evicted once the bound is exceeded.
const HistoryLimit = 100

// RewardThreshold is the EcoPoints total at which the user earns the
// congratulations banner.
const RewardThreshold = 100

// SessionKeyCurrentUser is the session-slot key holding the email of the
// currently logged-in user.
const SessionKeyCurrentUser = "current_user"
