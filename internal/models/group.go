package models

// Group represents a named category of ledgers. Groups nest via
// ParentGroupID to form a tree used for report bucketing.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Current Assets").
	Name string

	// ParentGroupID is the enclosing group, or empty for a top-level
	// group.
	ParentGroupID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Contact represents a person or organization ledgers can be tied to.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	ID string

	// Name is the display name of the contact.
	Name string

	// Email is the contact's email address, if known.
	Email string

	// Phone is the contact's phone number, if known.
	Phone string

	// Address is the contact's postal address, if known.
	Address string

	// CreatedAt is the Unix timestamp when the contact was created.
	CreatedAt int64
}
