package db

import "github.com/lib/pq"

const (
	DuplicateEntry pq.ErrorCode = "23505"
	CheckViolation pq.ErrorCode = "23514"
	EntryTooLong   pq.ErrorCode = "22001"
)
