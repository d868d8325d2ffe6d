package progress

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyOnFirstAccess(t *testing.T) {
	store := NewFileStore(t.TempDir())

	p, err := store.Load("newcomer")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", p.StudentID)
	assert.Empty(t, p.CompletedLessons)
	assert.Empty(t, p.CompletedTests)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	p := New("amy")
	p.AddLesson(LessonRef{Subject: "Mathematics", Grade: 3, Topic: "Fractions"})
	p.AddLesson(LessonRef{Subject: "Science", Grade: 4, Topic: "Energy"})
	p.AddTest(TestRecord{Subject: "Mathematics", Grade: 3, Topic: "Fractions", Score: 2, Total: 3})
	require.NoError(t, store.Save(p))

	loaded, err := store.Load("amy")
	require.NoError(t, err)
	assert.Equal(t, p.CompletedLessons, loaded.CompletedLessons)
	assert.Equal(t, p.CompletedTests, loaded.CompletedTests)
	assert.Equal(t, "amy", loaded.StudentID)
}

func TestSaveWritesSortedPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	p := New("amy")
	p.AddLesson(LessonRef{Subject: "Science", Grade: 3, Topic: "Life Cycles"})
	p.AddTest(TestRecord{Subject: "Science", Grade: 3, Topic: "Life Cycles", Score: 1, Total: 2})
	require.NoError(t, store.Save(p))

	data, err := os.ReadFile(filepath.Join(dir, "amy.json"))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "  \"completed_lessons\"", "document should be indented")
	assert.True(t, strings.HasSuffix(text, "\n"), "document should end with a newline")

	// Top-level keys appear in sorted order.
	lessons := strings.Index(text, `"completed_lessons"`)
	tests := strings.Index(text, `"completed_tests"`)
	student := strings.Index(text, `"student_id"`)
	assert.True(t, lessons < tests && tests < student, "keys out of order:\n%s", text)

	// Keys inside the nested lesson and test objects are sorted too.
	lessonKeys := keyOrder(t, text[lessons:tests], "grade", "subject", "topic")
	assert.True(t, sort.IntsAreSorted(lessonKeys), "lesson entry keys out of order:\n%s", text)
	testKeys := keyOrder(t, text[tests:student], "grade", "score", "subject", "topic", "total")
	assert.True(t, sort.IntsAreSorted(testKeys), "test entry keys out of order:\n%s", text)
}

// keyOrder returns the offsets of the given keys within a document slice.
func keyOrder(t *testing.T, text string, keys ...string) []int {
	t.Helper()
	offsets := make([]int, len(keys))
	for i, k := range keys {
		offsets[i] = strings.Index(text, `"`+k+`"`)
		require.NotEqual(t, -1, offsets[i], "key %q missing", k)
	}
	return offsets
}

func TestSanitizedFilename(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, store.Save(New("amy o'brien")))

	_, err := os.Stat(filepath.Join(dir, "amy_o_brien.json"))
	assert.NoError(t, err)

	// The round trip still resolves the original id to the same file.
	loaded, err := store.Load("amy o'brien")
	require.NoError(t, err)
	assert.Equal(t, "amy o'brien", loaded.StudentID)
}

func TestLoadIgnoresStoredID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "amy.json"),
		[]byte(`{"completed_lessons": [], "completed_tests": [], "student_id": "someone-else"}`),
		0o644,
	))

	loaded, err := NewFileStore(dir).Load("amy")
	require.NoError(t, err)
	assert.Equal(t, "amy", loaded.StudentID, "filename is authoritative for identity")
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "amy.json"), []byte("{nope"), 0o644))

	_, err := NewFileStore(dir).Load("amy")
	assert.Error(t, err)
}

func TestDefaultDirPriority(t *testing.T) {
	t.Setenv("LUCA_DATA", "/tmp/override")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override", dir)

	t.Setenv("LUCA_DATA", "")
	dir, err = DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "luca"), dir)
}
