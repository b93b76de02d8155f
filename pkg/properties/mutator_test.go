// pkg/properties/mutator_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test property lookup, rewrite, dry-run and backup rotation

package properties

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/filesystem"
	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propsPath = "/opt/sdc/etc/sdc.properties"

func setupFS(t *testing.T, content string) (afero.Fs, types.FS) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, propsPath, []byte(content), 0640))
	return mem, filesystem.NewAferoFS(mem)
}

func readProps(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	require.NoError(t, err)
	return string(data)
}

func TestApply_ActiveLine(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		content     string
		value       string
		wantOld     string
		wantChanged bool
		wantContent string
	}{
		{
			name:        "new value",
			key:         "http.port",
			content:     "# SDC config\nhttp.port=18630\nhttps.port=-1\n",
			value:       "18640",
			wantOld:     "18630",
			wantChanged: true,
			wantContent: "# SDC config\nhttp.port=18640\nhttps.port=-1\n",
		},
		{
			name:        "same value",
			key:         "http.port",
			content:     "http.port=18630\nhttps.port=-1\n",
			value:       "18630",
			wantOld:     "18630",
			wantChanged: false,
			wantContent: "http.port=18630\nhttps.port=-1\n",
		},
		{
			name:        "empty previous value",
			key:         "http.port",
			content:     "http.port=\n",
			value:       "18630",
			wantOld:     "",
			wantChanged: true,
			wantContent: "http.port=18630\n",
		},
		{
			name:        "value containing equals sign",
			key:         "java.opts",
			content:     "java.opts=-Da=b\n",
			value:       "-Da=c",
			wantOld:     "-Da=b",
			wantChanged: true,
			wantContent: "java.opts=-Da=c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, fsys := setupFS(t, tt.content)
			m := New(Options{FS: fsys})

			result, err := m.Apply(Request{Dest: propsPath, Parameter: tt.key, Value: tt.value})
			require.NoError(t, err)

			assert.Equal(t, tt.wantOld, result.OldValue)
			assert.Equal(t, tt.value, result.NewValue)
			assert.Equal(t, tt.wantChanged, result.Changed)
			assert.Equal(t, tt.wantContent, readProps(t, mem, propsPath))
			assert.Equal(t, Checksum([]byte(tt.wantContent)), result.Checksum)
		})
	}
}

func TestApply_PreservesOtherLinesVerbatim(t *testing.T) {
	content := "a=1\r\n  indented=2\n#comment with = sign\n\nhttp.port=18630\nlast=no-newline"
	mem, fsys := setupFS(t, content)

	_, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "1"})
	require.NoError(t, err)

	want := "a=1\r\n  indented=2\n#comment with = sign\n\nhttp.port=1" + LineEnding + "last=no-newline"
	assert.Equal(t, want, readProps(t, mem, propsPath))
}

func TestApply_KeepsFileMode(t *testing.T) {
	mem, fsys := setupFS(t, "http.port=18630\n")

	_, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "1"})
	require.NoError(t, err)

	info, err := mem.Stat(propsPath)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0640), info.Mode().Perm())
}

func TestApply_CommentedLine(t *testing.T) {
	t.Run("different value is a change", func(t *testing.T) {
		mem, fsys := setupFS(t, "#https.port=18631\nhttp.port=18630\n")

		result, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "https.port", Value: "18632"})
		require.NoError(t, err)

		assert.Equal(t, "18631", result.OldValue)
		assert.True(t, result.Changed)
		assert.Equal(t, "https.port=18632\nhttp.port=18630\n", readProps(t, mem, propsPath))
	})

	t.Run("same value is decommented but not reported", func(t *testing.T) {
		mem, fsys := setupFS(t, "#https.port=18631\n")

		result, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "https.port", Value: "18631"})
		require.NoError(t, err)

		assert.False(t, result.Changed, "value comparison ignores the comment marker")
		assert.Equal(t, "https.port=18631\n", readProps(t, mem, propsPath))
	})
}

func TestApply_LiteralKey(t *testing.T) {
	// The dot must not match an arbitrary character.
	mem, fsys := setupFS(t, "httpXport=1\nhttp.port=2\n")

	result, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "3"})
	require.NoError(t, err)

	assert.Equal(t, "2", result.OldValue)
	assert.Equal(t, "httpXport=1\nhttp.port=3\n", readProps(t, mem, propsPath))

	_, fsys2 := setupFS(t, "a+b=1\n")
	result, err = New(Options{FS: fsys2}).Apply(Request{Dest: propsPath, Parameter: "a+b", Value: "2"})
	require.NoError(t, err)
	assert.Equal(t, "1", result.OldValue)
}

func TestApply_NotFound(t *testing.T) {
	content := "http.port=18630\nhttp.portx=1\n"
	mem, fsys := setupFS(t, content)

	_, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "https.port", Value: "1", Backup: true})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	assert.Equal(t, content, readProps(t, mem, propsPath))
	exists, err := afero.Exists(mem, propsPath+".bak")
	require.NoError(t, err)
	assert.False(t, exists, "no backup should be taken when the key is missing")
}

func TestApply_DryRun(t *testing.T) {
	content := "http.port=18630\n"
	mem, fsys := setupFS(t, content)

	result, err := New(Options{FS: fsys}).Apply(Request{
		Dest:      propsPath,
		Parameter: "http.port",
		Value:     "18640",
		Backup:    true,
		DryRun:    true,
		Diff:      true,
	})
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.DryRun)
	assert.Equal(t, "18630", result.OldValue)
	assert.Empty(t, result.BackupPath)
	assert.Contains(t, result.Diff, "-http.port=18630")
	assert.Contains(t, result.Diff, "+http.port=18640")

	assert.Equal(t, content, readProps(t, mem, propsPath))
	exists, err := afero.Exists(mem, propsPath+".bak")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApply_Backup(t *testing.T) {
	mem, fsys := setupFS(t, "http.port=1\n")
	m := New(Options{FS: fsys})

	first, err := m.Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "2", Backup: true})
	require.NoError(t, err)
	assert.Equal(t, propsPath+".bak", first.BackupPath)

	second, err := m.Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "3", Backup: true})
	require.NoError(t, err)
	assert.Equal(t, propsPath+".1.bak", second.BackupPath)

	assert.Equal(t, "http.port=1\n", readProps(t, mem, propsPath+".bak"))
	assert.Equal(t, "http.port=2\n", readProps(t, mem, propsPath+".1.bak"))
	assert.Equal(t, "http.port=3\n", readProps(t, mem, propsPath))
}

func TestApply_NoWriteWhenUpToDate(t *testing.T) {
	mem, fsys := setupFS(t, "http.port=1\n")

	result, err := New(Options{FS: fsys}).Apply(Request{Dest: propsPath, Parameter: "http.port", Value: "1", Backup: true})
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Empty(t, result.BackupPath)
	exists, err := afero.Exists(mem, propsPath+".bak")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApply_Validation(t *testing.T) {
	mem, fsys := setupFS(t, "http.port=1\n")
	require.NoError(t, mem.MkdirAll("/opt/sdc/etc/conf.d", 0755))
	m := New(Options{FS: fsys})

	tests := []struct {
		name string
		req  Request
	}{
		{"empty parameter", Request{Dest: propsPath, Value: "1"}},
		{"empty value", Request{Dest: propsPath, Parameter: "http.port"}},
		{"empty dest", Request{Parameter: "http.port", Value: "1"}},
		{"multi-line value", Request{Dest: propsPath, Parameter: "http.port", Value: "1\nevil=1"}},
		{"missing file", Request{Dest: "/opt/sdc/etc/missing.properties", Parameter: "http.port", Value: "1"}},
		{"directory", Request{Dest: "/opt/sdc/etc/conf.d", Parameter: "http.port", Value: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Apply(tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "got %v", err)
		})
	}
}
