package services

import "sync"

// StoreLocks serialises writers against readers per store. Engines hold read
// locks while they copy rows out, so a report never sees half a write.
//
// Locks are always taken in field order (Taxonomy, Transactions, Plans,
// Snapshots) to rule out lock-order deadlocks.
type StoreLocks struct {
	Taxonomy     sync.RWMutex
	Transactions sync.RWMutex
	Plans        sync.RWMutex
	Snapshots    sync.RWMutex
}

// NewStoreLocks returns a zeroed set of locks shared by every service built
// over the same database.
func NewStoreLocks() *StoreLocks {
	return &StoreLocks{}
}
