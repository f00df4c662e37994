package conflict

import (
	"errors"
	"fmt"

	"github.com/ridawn928/hr-connect/internal/models"
)

// ErrManualResolutionRequired indicates the conflict set contains at
// least one field a human must resolve; no merged payload is produced.
var ErrManualResolutionRequired = errors.New("manual conflict resolution required")

// MergeFunc is a caller-supplied field-specific merge rule. It receives
// the dotted path and both values and returns the merged value.
type MergeFunc func(path string, local, remote models.Value) (models.Value, error)

// Resolver applies a conflict list onto a copy of the local payload.
type Resolver struct {
	// mergeFuncs maps dotted paths to field-specific merge rules,
	// consulted for conflicts with action merge.
	mergeFuncs map[string]MergeFunc
}

// NewResolver creates a resolver with the given per-field merge rules.
// A nil map is valid: every merge-action conflict then requires a human.
func NewResolver(mergeFuncs map[string]MergeFunc) *Resolver {
	return &Resolver{mergeFuncs: mergeFuncs}
}

// Resolve produces the merged payload: a copy of local with every
// use_remote conflict overwritten by the remote value and every merge
// conflict replaced by its merge rule's output. use_local conflicts are
// left untouched.
//
// If any conflict requires manual resolution (including merge conflicts
// without a registered rule) the whole resolution short-circuits with
// ErrManualResolutionRequired before anything is written. For fixed
// inputs the output is always the same tree.
func (r *Resolver) Resolve(conflicts []models.FieldConflict, local, remote models.Value) (models.Value, error) {
	// Сначала проверяем весь список: manual блокирует запись целиком.
	for _, c := range conflicts {
		if c.Action == models.ActionRequireManual {
			return models.Value{}, fmt.Errorf("field %q: %w", c.FieldPath, ErrManualResolutionRequired)
		}
		if c.Action == models.ActionMerge {
			if _, ok := r.mergeFuncs[c.FieldPath]; !ok {
				return models.Value{}, fmt.Errorf("field %q has no merge rule: %w", c.FieldPath, ErrManualResolutionRequired)
			}
		}
	}

	merged := local.Clone()
	for _, c := range conflicts {
		switch c.Action {
		case models.ActionUseLocal:
			// Локальное значение уже на месте.
		case models.ActionUseRemote:
			merged = merged.Set(c.FieldPath, c.Remote)
		case models.ActionMerge:
			value, err := r.mergeFuncs[c.FieldPath](c.FieldPath, c.Local, c.Remote)
			if err != nil {
				return models.Value{}, fmt.Errorf("merge rule for field %q failed: %w", c.FieldPath, err)
			}
			merged = merged.Set(c.FieldPath, value)
		}
	}
	return merged, nil
}
