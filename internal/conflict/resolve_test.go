package conflict

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridawn928/hr-connect/internal/models"
)

func TestResolve_ServerWins(t *testing.T) {
	local := models.MapValue(map[string]models.Value{
		"name":  models.StringValue("Jane"),
		"hours": models.NumberValue(8),
	})
	remote := models.MapValue(map[string]models.Value{
		"name":  models.StringValue("John"),
		"hours": models.NumberValue(8),
	})

	conflicts := NewDetector(NewPolicy()).Detect(local, remote)
	require.Len(t, conflicts, 1)

	merged, err := NewResolver(nil).Resolve(conflicts, local, remote)
	require.NoError(t, err)

	name, ok := merged.Get("name")
	require.True(t, ok)
	assert.Equal(t, "John", name.Str)

	hours, ok := merged.Get("hours")
	require.True(t, ok)
	assert.Equal(t, float64(8), hours.Number)
}

func TestResolve_UseLocalKeepsLocalValue(t *testing.T) {
	local := models.MapValue(map[string]models.Value{"draft": models.StringValue("mine")})
	remote := models.MapValue(map[string]models.Value{"draft": models.StringValue("theirs")})

	conflicts := NewDetector(NewPolicy("draft")).Detect(local, remote)
	merged, err := NewResolver(nil).Resolve(conflicts, local, remote)
	require.NoError(t, err)

	draft, ok := merged.Get("draft")
	require.True(t, ok)
	assert.Equal(t, "mine", draft.Str)
}

func TestResolve_ManualShortCircuits(t *testing.T) {
	local := models.MapValue(map[string]models.Value{
		"name": models.StringValue("Jane"),
		"tags": models.ListValue(models.StringValue("a")),
	})
	remote := models.MapValue(map[string]models.Value{
		"name": models.StringValue("John"),
		"tags": models.ListValue(models.StringValue("b")),
	})

	conflicts := NewDetector(NewPolicy()).Detect(local, remote)
	_, err := NewResolver(nil).Resolve(conflicts, local, remote)
	assert.ErrorIs(t, err, ErrManualResolutionRequired)
}

func TestResolve_MergeWithoutRuleRequiresManual(t *testing.T) {
	conflicts := []models.FieldConflict{{
		FieldPath: "counter",
		Action:    models.ActionMerge,
		Local:     models.NumberValue(2),
		Remote:    models.NumberValue(3),
	}}

	_, err := NewResolver(nil).Resolve(conflicts, models.MapValue(nil), models.MapValue(nil))
	assert.ErrorIs(t, err, ErrManualResolutionRequired)
}

func TestResolve_MergeRuleApplied(t *testing.T) {
	// Правило слияния: берём максимум из двух счётчиков.
	rules := map[string]MergeFunc{
		"counter": func(path string, local, remote models.Value) (models.Value, error) {
			if local.Number > remote.Number {
				return local, nil
			}
			return remote, nil
		},
	}

	local := models.MapValue(map[string]models.Value{"counter": models.NumberValue(2)})
	conflicts := []models.FieldConflict{{
		FieldPath: "counter",
		Action:    models.ActionMerge,
		Local:     models.NumberValue(2),
		Remote:    models.NumberValue(5),
	}}

	merged, err := NewResolver(rules).Resolve(conflicts, local, models.MapValue(nil))
	require.NoError(t, err)

	counter, ok := merged.Get("counter")
	require.True(t, ok)
	assert.Equal(t, float64(5), counter.Number)
}

func TestResolve_MergeRuleError(t *testing.T) {
	wantErr := errors.New("cannot merge")
	rules := map[string]MergeFunc{
		"v": func(path string, local, remote models.Value) (models.Value, error) {
			return models.Value{}, wantErr
		},
	}

	conflicts := []models.FieldConflict{{
		FieldPath: "v",
		Action:    models.ActionMerge,
	}}

	_, err := NewResolver(rules).Resolve(conflicts, models.MapValue(nil), models.MapValue(nil))
	assert.ErrorIs(t, err, wantErr)
}

func TestResolve_DoesNotMutateLocal(t *testing.T) {
	local := models.MapValue(map[string]models.Value{"name": models.StringValue("Jane")})
	remote := models.MapValue(map[string]models.Value{"name": models.StringValue("John")})

	conflicts := NewDetector(NewPolicy()).Detect(local, remote)
	_, err := NewResolver(nil).Resolve(conflicts, local, remote)
	require.NoError(t, err)

	// Исходное локальное дерево не тронуто.
	name, _ := local.Get("name")
	assert.Equal(t, "Jane", name.Str)
}

func TestResolve_Idempotent(t *testing.T) {
	local := models.MapValue(map[string]models.Value{
		"name":  models.StringValue("Jane"),
		"hours": models.NumberValue(8),
		"address": models.MapValue(map[string]models.Value{
			"city": models.StringValue("Oslo"),
		}),
	})
	remote := models.MapValue(map[string]models.Value{
		"name":  models.StringValue("John"),
		"hours": models.NumberValue(7),
		"address": models.MapValue(map[string]models.Value{
			"city": models.StringValue("Bergen"),
		}),
	})

	detector := NewDetector(NewPolicy())
	resolver := NewResolver(nil)

	first, err := resolver.Resolve(detector.Detect(local, remote), local, remote)
	require.NoError(t, err)
	second, err := resolver.Resolve(detector.Detect(local, remote), local, remote)
	require.NoError(t, err)

	// Повторное разрешение того же конфликта даёт байт-в-байт тот же результат.
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}
