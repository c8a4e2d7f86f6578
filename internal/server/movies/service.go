// Package movies implements the moderation workflow: submissions land in
// the pending bucket and are promoted to the final bucket on approval.
package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/moviegate/internal/common"
	sc "github.com/dmitrijs2005/moviegate/internal/server/config"
	"github.com/dmitrijs2005/moviegate/internal/server/storage"
)

type Service struct {
	store  storage.ObjectStore
	config *sc.Config
}

func NewService(store storage.ObjectStore, config *sc.Config) *Service {
	return &Service{
		store:  store,
		config: config,
	}
}

// StorageKey derives the object key for a movie identifier.
func StorageKey(id string) string {
	return id + ".json"
}

// Submit stores the record in the pending bucket under a freshly generated
// identifier and returns that identifier. No validation beyond field
// typing, no duplicate detection.
func (s *Service) Submit(ctx context.Context, m Movie) (string, error) {

	id := uuid.New().String()

	body, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error encoding movie: %w", err)
	}

	if err := s.store.Put(ctx, s.config.S3PendingBucket, StorageKey(id), body); err != nil {
		return "", fmt.Errorf("error storing submission: %w", err)
	}

	return id, nil
}

// ListFinal returns every approved movie, in bucket enumeration order.
// An empty bucket yields an empty (non-nil) slice. A single unreadable
// object aborts the whole listing.
func (s *Service) ListFinal(ctx context.Context) ([]ListedMovie, error) {

	keys, err := s.store.List(ctx, s.config.S3FinalBucket)
	if err != nil {
		return nil, fmt.Errorf("error listing final bucket: %w", err)
	}

	result := make([]ListedMovie, 0, len(keys))
	for _, key := range keys {
		body, err := s.store.Get(ctx, s.config.S3FinalBucket, key)
		if err != nil {
			return nil, fmt.Errorf("error reading approved movie: %w", err)
		}

		var m Movie
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, fmt.Errorf("error decoding approved movie %s: %w", key, err)
		}

		result = append(result, ListedMovie{
			ID:    strings.TrimSuffix(key, ".json"),
			Movie: m,
		})
	}

	return result, nil
}

// Approve moves the record from the pending bucket to the final bucket.
// The move is copy-then-delete and deliberately not atomic: a crash between
// the two steps leaves the record in both buckets.
//
// Returns an error wrapping common.ErrorNotFound when no pending object
// exists for the identifier (never submitted, or already approved). Any
// other failure is a storage error and is reported as such, never as
// "not found".
func (s *Service) Approve(ctx context.Context, id string) error {

	key := StorageKey(id)

	body, err := s.store.Get(ctx, s.config.S3PendingBucket, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("pending movie %s: %w", id, common.ErrorNotFound)
		}
		return fmt.Errorf("error fetching pending movie: %w", err)
	}

	// raw bytes pass through unchanged
	if err := s.store.Put(ctx, s.config.S3FinalBucket, key, body); err != nil {
		return fmt.Errorf("error copying movie to final bucket: %w", err)
	}

	if err := s.store.Delete(ctx, s.config.S3PendingBucket, key); err != nil {
		return fmt.Errorf("error deleting pending copy: %w", err)
	}

	return nil
}
