package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the New Relic transaction from a request context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction.
// Returns nil if transaction is not available.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// WithSegment executes fn within a segment of the context's transaction
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}

// WithSegmentAndReturn is WithSegment for functions that produce a value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}

// DatastoreSegment starts a Postgres datastore segment for a repository call.
// The returned func ends it and is safe to call when no transaction exists.
func DatastoreSegment(ctx context.Context, collection, operation string) func() {
	txn := FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	seg := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: collection,
		Operation:  operation,
	}
	return seg.End
}
