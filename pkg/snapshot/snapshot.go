// Package snapshot stores golden documents and verifies new builds against
// them.
//
// A snapshot is the XML rendering of a document saved under a name. Verify
// rebuilds nothing itself: callers pass the freshly built document and get
// back the structural differences reported by [doc.Diff].
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/pipeline"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

// Snapshot is a named golden document.
type Snapshot struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	SceneHash string    `json:"scene_hash" bson:"scene_hash"`
	Format    string    `json:"format" bson:"format"`
	Data      []byte    `json:"-" bson:"data"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store persists snapshots by name. Put replaces an existing snapshot of the
// same name. Get and Delete return NOT_FOUND for unknown names. List returns
// snapshots sorted by name; their Data may be empty.
type Store interface {
	Put(ctx context.Context, s *Snapshot) error
	Get(ctx context.Context, name string) (*Snapshot, error)
	List(ctx context.Context) ([]*Snapshot, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

// ValidateName checks that name is usable as a snapshot name: letters,
// digits, dot, underscore and dash, starting with a letter or digit.
func ValidateName(name string) error {
	return errors.ValidateSnapshotName(name)
}

// Save stores the xml artifact of result under name. The result must have
// been converted with the xml format.
func Save(ctx context.Context, store Store, name string, result *pipeline.Result) (*Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data, ok := result.Artifacts[render.FormatXML]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "snapshot %s: result has no xml artifact", name)
	}
	s := &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		SceneHash: result.SceneHash,
		Format:    string(render.FormatXML),
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return s, nil
}

// Verify compares d against the snapshot stored under name. It returns the
// differences and, when there are any, a SNAPSHOT_MISMATCH error.
func Verify(ctx context.Context, store Store, name string, d *doc.Document) ([]doc.Difference, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	s, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	golden, err := render.ParseXML(bytes.NewReader(s.Data))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", name, err)
	}
	diffs := doc.Diff(golden, d)
	if len(diffs) > 0 {
		return diffs, errors.New(errors.ErrCodeSnapshotMismatch, "snapshot %s: %d difference(s)", name, len(diffs))
	}
	return nil, nil
}
