// Package entity contains the core business objects of the project.
package entity

// DonationStatus tracks a donation through its lifecycle.
// The allowed transitions are:
//
//	available -> claimed | expired
//	claimed   -> picked_up | expired
//
// picked_up and expired are terminal.
type DonationStatus string

const (
	// StatusAvailable is the initial state of every donation.
	StatusAvailable DonationStatus = "available"
	// StatusClaimed indicates an organization committed to the pickup.
	StatusClaimed DonationStatus = "claimed"
	// StatusPickedUp indicates the food was collected. Terminal.
	StatusPickedUp DonationStatus = "picked_up"
	// StatusExpired indicates the pickup window lapsed unclaimed or unserved. Terminal.
	StatusExpired DonationStatus = "expired"
)

// String returns the string representation of the DonationStatus.
func (s DonationStatus) String() string {
	return string(s)
}

// IsValid checks if the DonationStatus is one of the enumerated values.
func (s DonationStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusPickedUp, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined out of s.
func (s DonationStatus) IsTerminal() bool {
	return s == StatusPickedUp || s == StatusExpired
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	switch s {
	case StatusAvailable:
		return next == StatusClaimed || next == StatusExpired
	case StatusClaimed:
		return next == StatusPickedUp || next == StatusExpired
	default:
		return false
	}
}
