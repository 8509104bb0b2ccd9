package logic

import "dispatchdash/internal/domain"

// RecordStore provides access to the rows of one table
type RecordStore interface {
	Get(key string) (domain.Record, bool)
	All() []domain.Record
	Put(records ...domain.Record)
	Remove(key string)
	Len() int
}
