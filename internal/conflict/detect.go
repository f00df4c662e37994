// Package conflict implements field-level diffing and merging of two
// payload trees: the local pending mutation vs. the current remote
// snapshot of the same aggregate.
package conflict

import (
	"sort"

	"github.com/ridawn928/hr-connect/internal/models"
)

// DefaultMaxDepth bounds the recursive tree walk. Payload trees deeper
// than this are flagged for manual resolution rather than walked further.
const DefaultMaxDepth = 32

// Policy configures conflict detection.
type Policy struct {
	// LocalFields lists dotted paths the local side is authoritative for.
	// Fields listed here resolve to use_local instead of the
	// server-wins default.
	LocalFields map[string]struct{}

	// MaxDepth guards the recursive walk; 0 means DefaultMaxDepth.
	MaxDepth int
}

// NewPolicy builds a Policy with the given local-authoritative paths.
func NewPolicy(localFields ...string) Policy {
	fields := make(map[string]struct{}, len(localFields))
	for _, f := range localFields {
		fields[f] = struct{}{}
	}
	return Policy{LocalFields: fields}
}

func (p Policy) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

func (p Policy) localAuthoritative(path string) bool {
	_, ok := p.LocalFields[path]
	return ok
}

// Detector walks local and remote payload trees and produces the list of
// field-level conflicts between them.
type Detector struct {
	policy Policy
}

// NewDetector creates a detector with the given policy.
func NewDetector(policy Policy) *Detector {
	return &Detector{policy: policy}
}

// Detect recursively compares the two trees key by key and returns every
// field-level disagreement. The result is deterministic: map keys are
// walked in sorted order and nothing depends on wall-clock time.
//
// Rules, per field:
//   - equal values → no conflict
//   - key present on one side only → use_remote (remote-only) or
//     use_local (local-only)
//   - differing primitives → use_remote (server wins), unless the path is
//     local-authoritative → use_local
//   - both nested maps → recurse
//   - lists, or differing value kinds → require_manual
func (d *Detector) Detect(local, remote models.Value) []models.FieldConflict {
	return d.walk("", local, remote, 0)
}

// Resolution runs Detect and wraps the result with the derived strategy.
func (d *Detector) Resolution(local, remote models.Value) models.Resolution {
	return models.NewResolution(d.Detect(local, remote))
}

func (d *Detector) walk(path string, local, remote models.Value, depth int) []models.FieldConflict {
	if local.Equal(remote) {
		return nil
	}

	// Глубина превышена: дальше не спускаемся, отдаем на ручное разрешение.
	if depth >= d.policy.maxDepth() {
		return []models.FieldConflict{manual(path, local, remote)}
	}

	// Both nested maps: recurse into the union of keys.
	if local.Kind == models.KindMap && remote.Kind == models.KindMap {
		var conflicts []models.FieldConflict
		for _, key := range unionKeys(local, remote) {
			childPath := joinPath(path, key)
			localChild, inLocal := local.Map[key]
			remoteChild, inRemote := remote.Map[key]

			switch {
			case inLocal && !inRemote:
				conflicts = append(conflicts, models.FieldConflict{
					FieldPath: childPath,
					Action:    models.ActionUseLocal,
					Local:     localChild,
					Remote:    models.Null(),
				})
			case !inLocal && inRemote:
				conflicts = append(conflicts, models.FieldConflict{
					FieldPath: childPath,
					Action:    models.ActionUseRemote,
					Local:     models.Null(),
					Remote:    remoteChild,
				})
			default:
				conflicts = append(conflicts, d.walk(childPath, localChild, remoteChild, depth+1)...)
			}
		}
		return conflicts
	}

	// Differing kinds or lists are structural: a human decides.
	if local.Kind != remote.Kind || local.Kind == models.KindList {
		return []models.FieldConflict{manual(path, local, remote)}
	}

	// Differing primitives: server wins unless the field is
	// local-authoritative.
	action := models.ActionUseRemote
	if d.policy.localAuthoritative(path) {
		action = models.ActionUseLocal
	}
	return []models.FieldConflict{{
		FieldPath: path,
		Action:    action,
		Local:     local,
		Remote:    remote,
	}}
}

func manual(path string, local, remote models.Value) models.FieldConflict {
	return models.FieldConflict{
		FieldPath: path,
		Action:    models.ActionRequireManual,
		Local:     local,
		Remote:    remote,
	}
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func unionKeys(a, b models.Value) []string {
	seen := make(map[string]struct{}, len(a.Map)+len(b.Map))
	for k := range a.Map {
		seen[k] = struct{}{}
	}
	for k := range b.Map {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
