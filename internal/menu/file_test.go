package menu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Document
		wantErr error
	}{
		{
			name: "full document",
			input: `
title: Navigation
items:
  - id: "1"
    label: Dashboard
    icon: "▦"
    children:
      - id: "1-1"
        label: Analytics
  - id: "3"
    label: About
    action: about
`,
			want: &Document{
				Title: "Navigation",
				Items: []Entry{
					{ID: "1", Label: "Dashboard", Icon: "▦", Children: []SubEntry{{ID: "1-1", Label: "Analytics"}}},
					{ID: "3", Label: "About", ActionName: "about"},
				},
			},
		},
		{
			name: "missing title defaults",
			input: `
items:
  - id: a
    label: Home
`,
			want: &Document{
				Title: DefaultTitle,
				Items: []Entry{{ID: "a", Label: "Home"}},
			},
		},
		{
			name: "labels are trimmed",
			input: `
items:
  - id: a
    label: "  Home  "
`,
			want: &Document{
				Title: DefaultTitle,
				Items: []Entry{{ID: "a", Label: "Home"}},
			},
		},
		{
			name:    "no items",
			input:   "title: Empty\n",
			wantErr: ErrNoItems,
		},
		{
			name: "entry without label",
			input: `
items:
  - id: a
`,
			wantErr: ErrMissingLabel,
		},
		{
			name: "child without label",
			input: `
items:
  - id: a
    label: Parent
    children:
      - id: a-1
`,
			wantErr: ErrMissingLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Entry{}, "Action")); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("items: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse menu")
}

func TestParse_GeneratesMissingIDs(t *testing.T) {
	doc, err := Parse([]byte(`
items:
  - label: Dashboard
    children:
      - label: Analytics
      - label: Reports
  - label: About
`))
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)

	ids := map[string]bool{}
	for _, entry := range doc.Items {
		assert.NotEmpty(t, entry.ID)
		ids[entry.ID] = true
		for _, sub := range entry.Children {
			assert.NotEmpty(t, sub.ID)
			ids[sub.ID] = true
		}
	}
	assert.Len(t, ids, 4, "generated ids should be unique")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "menu.yaml")

	require.NoError(t, Save(path, DefaultDocument()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	doc, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultDocument(), doc, cmpopts.IgnoreFields(Entry{}, "Action")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_WrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: x\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoItems))
	assert.Contains(t, err.Error(), path)
}
