// Package persist records evaluated hands to MongoDB for later review.
// Adapted from runtime/game/engines/mahjong/persist.go's GamePersister: a
// mutex-guarded in-memory buffer that is flushed to the database
// asynchronously, so the caller's hot path (scoring a hand) is never
// blocked on I/O. The teacher's persister buffers per-round game events
// across an entire match; this one buffers one EvaluationRecord per scored
// hand and has no concept of a match to close.
package persist

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mahjong/log"
)

// EvaluationRecord is one persisted hand evaluation: the input notation,
// the matched yaku names, and the final score, timestamped at evaluation
// time.
type EvaluationRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RequestID   string             `bson:"requestId"`
	HandText    string             `bson:"handText"`
	Yaku        []string           `bson:"yaku"`
	Han         int                `bson:"han"`
	Fu          int                `bson:"fu"`
	Rank        string             `bson:"rank"`
	EvaluatedAt time.Time          `bson:"evaluatedAt"`
}

// Repository is the persistence boundary the Store writes through; the only
// implementation here is mongoRepository, but the interface keeps the
// buffering logic in Store testable without a live database.
type Repository interface {
	SaveRecords(ctx context.Context, records []EvaluationRecord) error
}

// Store buffers EvaluationRecords and flushes them to repo in batches,
// mirroring GamePersister's eventMu-guarded slice plus async save.
type Store struct {
	repo    Repository
	mu      sync.Mutex
	pending []EvaluationRecord
	closed  bool
}

// NewStore builds a Store backed by repo.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo, pending: make([]EvaluationRecord, 0, 32)}
}

// Record appends rec to the pending buffer.
func (s *Store) Record(rec EvaluationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = append(s.pending, rec)
}

// Flush asynchronously writes every buffered record to the repository and
// clears the buffer. Safe to call repeatedly; a failed flush logs and drops
// its batch rather than retrying indefinitely.
func (s *Store) Flush() {
	s.mu.Lock()
	batch := make([]EvaluationRecord, len(s.pending))
	copy(batch, s.pending)
	s.pending = s.pending[:0]
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.repo.SaveRecords(ctx, batch); err != nil {
			log.Error("persisting evaluation records failed: %v", err)
		}
	}()
}

// Close flushes any remaining records and stops accepting new ones.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.Flush()
}

// mongoRepository is the Repository implementation backed by a live mongo
// collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository connects to uri and returns a Repository writing into
// db.evaluations.
func NewMongoRepository(ctx context.Context, uri, db string) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &mongoRepository{collection: client.Database(db).Collection("evaluations")}, nil
}

func (r *mongoRepository) SaveRecords(ctx context.Context, records []EvaluationRecord) error {
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		if rec.ID.IsZero() {
			rec.ID = primitive.NewObjectID()
		}
		docs[i] = rec
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
