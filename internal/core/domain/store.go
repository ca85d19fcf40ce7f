package domain

// Store represents a named place of business whose transactions are aggregated
// together. Name is the join key used by Transaction.StoreName; no uniqueness
// constraint is enforced on it at this layer.
type Store struct {
	StoreID     string `json:"storeID" db:"store_id"` // Primary key (UUID)
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Address     string `json:"address" db:"address"`
	Phone       string `json:"phone" db:"phone"`
	AuditFields
}
