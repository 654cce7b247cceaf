package heatmap

import (
	"reflect"
	"testing"
	"time"

	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
)

func snap(username string, skills assessment.SkillMap) Snapshot {
	return Snapshot{
		UserID:      uuid.New(),
		Username:    username,
		Skills:      skills,
		SubmittedAt: time.Now().UTC(),
	}
}

func TestBuild_MissingKeysDefaultToZero(t *testing.T) {
	snaps := []Snapshot{
		snap("alice", assessment.SkillMap{"k1": 4}),
	}

	hm := Build(snaps, []string{"k1", "k2"})

	if len(hm.Users) != 1 || hm.Users[0] != "alice" {
		t.Fatalf("unexpected users: %v", hm.Users)
	}
	if !reflect.DeepEqual(hm.Matrix, [][]float64{{4, 0}}) {
		t.Fatalf("unexpected matrix: %v", hm.Matrix)
	}
}

func TestBuild_RowAndColumnOrder(t *testing.T) {
	snaps := []Snapshot{
		snap("alice", assessment.SkillMap{"react": 1, "sql": 2}),
		snap("bob", assessment.SkillMap{"react": 3, "sql": 4}),
	}

	hm := Build(snaps, []string{"sql", "react"})

	if !reflect.DeepEqual(hm.Users, []string{"alice", "bob"}) {
		t.Fatalf("row order not preserved: %v", hm.Users)
	}
	want := [][]float64{{2, 1}, {4, 3}}
	if !reflect.DeepEqual(hm.Matrix, want) {
		t.Fatalf("column order not preserved: got %v want %v", hm.Matrix, want)
	}
}

func TestBuild_NoSnapshots(t *testing.T) {
	hm := Build(nil, []string{"x"})

	if len(hm.Users) != 0 {
		t.Fatalf("expected empty users, got %v", hm.Users)
	}
	if len(hm.Matrix) != 0 {
		t.Fatalf("expected empty matrix, got %v", hm.Matrix)
	}
}

func TestBuild_EmptyKeyList(t *testing.T) {
	hm := Build([]Snapshot{snap("alice", assessment.SkillMap{"react": 4})}, nil)

	if len(hm.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(hm.Users))
	}
	if len(hm.Matrix) != 1 || len(hm.Matrix[0]) != 0 {
		t.Fatalf("expected one empty row, got %v", hm.Matrix)
	}
}

func TestThreshold_FiltersByMinRating(t *testing.T) {
	snaps := []Snapshot{
		snap("alice", assessment.SkillMap{"sql": 3}),
		snap("bob", assessment.SkillMap{"sql": 2}),
		snap("carol", assessment.SkillMap{"react": 5}),
	}

	out := Threshold(snaps, "sql", 3)

	if len(out) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out))
	}
	if out[0].Username != "alice" || out[0].Rating != 3 {
		t.Fatalf("unexpected match: %+v", out[0])
	}
}

func TestThreshold_MissingKeyCountsAsZero(t *testing.T) {
	snaps := []Snapshot{
		snap("alice", assessment.SkillMap{"react": 5}),
		snap("bob", assessment.SkillMap{"sql": 1}),
	}

	if out := Threshold(snaps, "sql", 1); len(out) != 1 || out[0].Username != "bob" {
		t.Fatalf("expected only bob at min=1, got %+v", out)
	}

	// min <= 0 admits everyone, rated or not.
	out := Threshold(snaps, "sql", 0)
	if len(out) != 2 {
		t.Fatalf("expected 2 matches at min=0, got %d", len(out))
	}
	if out[0].Rating != 0 {
		t.Fatalf("expected default 0 rating for alice, got %v", out[0].Rating)
	}
}

func TestThreshold_EmptySkillKey(t *testing.T) {
	snaps := []Snapshot{
		snap("alice", assessment.SkillMap{"react": 5}),
	}

	if out := Threshold(snaps, "", 1); len(out) != 0 {
		t.Fatalf("expected no matches for empty key at min=1, got %d", len(out))
	}
	if out := Threshold(snaps, "", -1); len(out) != 1 {
		t.Fatalf("expected all matches for empty key at min=-1, got %d", len(out))
	}
}

func TestThreshold_PreservesInputOrder(t *testing.T) {
	snaps := []Snapshot{
		snap("carol", assessment.SkillMap{"sql": 2}),
		snap("alice", assessment.SkillMap{"sql": 5}),
		snap("bob", assessment.SkillMap{"sql": 3}),
	}

	out := Threshold(snaps, "sql", 2)

	got := make([]string, 0, len(out))
	for _, m := range out {
		got = append(got, m.Username)
	}
	if !reflect.DeepEqual(got, []string{"carol", "alice", "bob"}) {
		t.Fatalf("expected enumeration order, got %v", got)
	}
}
