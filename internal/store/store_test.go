package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"studentportal-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestPathRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	for _, parts := range [][]string{
		{".."},
		{"courses", ".."},
		{"courses", "../users"},
		{"courses", "a/b"},
		{"courses", ".hidden"},
		{"courses", ""},
		{},
	} {
		_, err := s.Path(parts...)
		assert.ErrorIs(t, err, ErrBadKey, "parts %v", parts)
	}
}

func TestPathAcceptsSafeKeys(t *testing.T) {
	s := newTestStore(t)
	path, err := s.Path("courses", "user-1.2_x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "courses", "user-1.2_x.json"), path)
}

func TestReadJSONMissingFile(t *testing.T) {
	s := newTestStore(t)
	var doc map[string]string
	loaded, err := s.ReadJSON(&doc, "notes", "nobody")
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Nil(t, doc)
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := map[string]any{"a": "b", "nested": map[string]any{"x": float64(1)}}
	require.NoError(t, s.WriteJSON(in, "misc", "u1"))

	var out map[string]any
	loaded, err := s.ReadJSON(&out, "misc", "u1")
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, in, out)
}

func TestConcurrentWritesLeaveOneIntactDocument(t *testing.T) {
	s := newTestStore(t)
	a := map[string]string{"winner": "a", "payload": "aaaaaaaaaaaaaaaaaaaaaaaa"}
	b := map[string]string{"winner": "b", "payload": "bbbbbbbbbbbbbbbbbbbbbbbb"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.WriteJSON(a, "race", "u1")
		}()
		go func() {
			defer wg.Done()
			_ = s.WriteJSON(b, "race", "u1")
		}()
	}
	wg.Wait()

	var out map[string]string
	loaded, err := s.ReadJSON(&out, "race", "u1")
	require.NoError(t, err)
	require.True(t, loaded)
	if out["winner"] == "a" {
		assert.Equal(t, a, out)
	} else {
		assert.Equal(t, b, out)
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Join(s.Dir(), "race"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateJSONDoesNotLoseConcurrentIncrements(t *testing.T) {
	s := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var doc map[string]int
			_ = s.UpdateJSON(&doc, func(loaded bool) error {
				if !loaded {
					doc = map[string]int{}
				}
				doc["count"]++
				return nil
			}, "counters", "u1")
		}()
	}
	wg.Wait()

	var out map[string]int
	loaded, err := s.ReadJSON(&out, "counters", "u1")
	require.NoError(t, err)
	require.True(t, loaded)
	assert.Equal(t, 20, out["count"])
}

func TestCollectionDefaults(t *testing.T) {
	s := newTestStore(t)
	docs := NewDocuments(s)

	courses, err := docs.Courses.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, models.CoursesData{MyCourses: []string{}, CompletedCourses: []string{}}, courses)

	gpa, err := docs.GPA.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, models.GpaData{Courses: []models.GpaCourse{}}, gpa)

	notes, err := docs.Notes.Load("u1")
	require.NoError(t, err)
	assert.Empty(t, notes)

	tasks, err := docs.Tasks.Load("u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	schedule, err := docs.Schedules.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, DefaultPeriods, schedule.Periods)
	assert.Empty(t, schedule.Schedule)
	assert.False(t, schedule.IsRamadanMode)
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newTestStore(t)
	docs := NewDocuments(s)

	in := models.ScheduleData{
		Schedule: map[string]map[string]string{
			"monday": {"8:30 - 10:15": "Physics 1"},
		},
		Periods:       []string{"8:30 - 10:15"},
		IsRamadanMode: true,
	}
	require.NoError(t, docs.Schedules.Save("u1", in))

	out, err := docs.Schedules.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	tasks := []models.Task{{ID: 1, Text: "finish report", Deadline: "2026-09-01", Priority: "high"}}
	require.NoError(t, docs.Tasks.Save("u1", tasks))
	gotTasks, err := docs.Tasks.Load("u1")
	require.NoError(t, err)
	assert.Equal(t, tasks, gotTasks)
}

func TestUserStoreLoadAllMissing(t *testing.T) {
	s := newTestStore(t)
	users := NewUserStore(s)
	all, err := users.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserStoreFindAndOrder(t *testing.T) {
	s := newTestStore(t)
	users := NewUserStore(s)
	require.NoError(t, users.SaveAll([]models.User{
		{ID: "1", Email: "UG1@f-eng.tanta.edu.eg", Username: "first"},
		{ID: "2", Email: "UG2@f-eng.tanta.edu.eg", Username: "second"},
	}))

	all, err := users.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Username)

	byID, err := users.FindByID("2")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "second", byID.Username)

	missing, err := users.FindByID("3")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byName, err := users.FindByEmailOrUsername("first")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "1", byName.ID)

	byEmail, err := users.FindByEmailOrUsername("UG2@f-eng.tanta.edu.eg")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "2", byEmail.ID)
}

func TestMaterialsAppendFileCreatesCategory(t *testing.T) {
	s := newTestStore(t)
	materials := NewMaterialsStore(s)

	file := models.FileMeta{ID: "file-1", Name: "notes.pdf", Size: "1 KB", Type: "application/pdf"}
	require.NoError(t, materials.AppendFile("u1", "physics-1", "lectures", file))

	categories, err := materials.Load("u1", "physics-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "lectures", categories[0].ID)
	assert.Equal(t, "New Category", categories[0].Title)
	require.Len(t, categories[0].Files, 1)
	assert.Equal(t, "notes.pdf", categories[0].Files[0].Name)

	second := models.FileMeta{ID: "file-2", Name: "sheet.pdf"}
	require.NoError(t, materials.AppendFile("u1", "physics-1", "lectures", second))
	categories, err = materials.Load("u1", "physics-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Files, 2)
}

func TestWriteJSONProducesIndentedFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteJSON(map[string]string{"k": "v"}, "misc", "u1"))
	data, err := os.ReadFile(filepath.Join(s.Dir(), "misc", "u1.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  ")
}
