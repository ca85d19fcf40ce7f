package repositories

// RepositoryContainer holds instances of all persistence repositories and is
// handed to the service layer at wiring time.
type RepositoryContainer struct {
	User        UserRepository
	Store       StoreRepository
	Transaction TransactionRepository
}
