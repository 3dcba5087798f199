package model

// Address is a saved delivery address. At most one address per user is the
// default; that invariant is enforced server-side, never locally.
type Address struct {
	AddressID    int64  `json:"addressId"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}
