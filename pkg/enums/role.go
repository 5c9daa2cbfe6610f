package enums

// Account roles are free-form at the storage layer; these are the values the
// marketplace clients send today.
const (
	RoleCustomer = "customer"
	RolePharmacy = "pharmacy"
	RoleAdmin    = "admin"
)
