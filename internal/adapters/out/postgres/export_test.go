package postgres

// TrackedCount reports how many writes the unit of work has recorded since
// it was created or last finished.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
