package account

import "time"

// ScheduleWindowSeconds is the window accrual phases are spread across.
// Phase-randomizing each account over 24 hours keeps externally driven
// pokes from all becoming due at the same instant.
const ScheduleWindowSeconds = 86_400

// SetEarningsSchedule arms the accrual schedule at first business creation:
// first_business_time becomes now and the next due instant is now plus
// (seed mod window) seconds. seed must be a stable, account-specific value
// so the offset is reproducible across restarts. A schedule that is
// already armed is left untouched.
func (a *Account) SetEarningsSchedule(now time.Time, seed uint64) {
	if !a.FirstBusinessAt.IsZero() {
		return
	}

	offset := time.Duration(seed%ScheduleWindowSeconds) * time.Second
	a.FirstBusinessAt = now
	a.NextEarningsAt = now.Add(offset)
}

// IsEarningsDue reports whether the account's accrual is eligible to run.
// An account that never armed its schedule is never due.
func (a *Account) IsEarningsDue(now time.Time) bool {
	if a.NextEarningsAt.IsZero() {
		return false
	}
	return !now.Before(a.NextEarningsAt)
}
