package audithook

// Action constants for audit events.
const (
	// Account actions
	ActionAccountCreated = "account.created"
	ActionEntryPaid      = "account.entry_paid"

	// Slot actions
	ActionSlotUnlocked     = "slot.unlocked"
	ActionPremiumSlotAdded = "slot.premium_added"

	// Business actions
	ActionBusinessPlaced   = "business.placed"
	ActionBusinessUpgraded = "business.upgraded"
	ActionBusinessSold     = "business.sold"

	// Earnings actions
	ActionEarningsAccrued  = "earnings.accrued"
	ActionEarningsClaimed  = "earnings.claimed"
	ActionReferralCredited = "referral.credited"

	// Integrity actions
	ActionIntegrityFailure = "integrity.failure"
)

// Resource constants for audit events.
const (
	ResourceAccount  = "account"
	ResourceSlot     = "slot"
	ResourceBusiness = "business"
	ResourceEarnings = "earnings"
)

// Category constants for audit events.
const (
	CategoryAccount   = "account"
	CategoryInventory = "inventory"
	CategoryEarnings  = "earnings"
	CategoryIntegrity = "integrity"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
