package assists

import (
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update fixture expectations")

type fixtureCase struct {
	name   string
	before string
	after  *string
}

func readFixtures(t *testing.T, ar *txtar.Archive) []*fixtureCase {
	t.Helper()
	byName := make(map[string]*fixtureCase)
	var cases []*fixtureCase
	for _, f := range ar.Files {
		dir, file := path.Split(f.Name)
		dir = path.Clean(dir)
		c, ok := byName[dir]
		if !ok {
			c = &fixtureCase{name: dir}
			byName[dir] = c
			cases = append(cases, c)
		}
		switch file {
		case "before.rs":
			c.before = string(f.Data)
		case "after.rs":
			after := string(f.Data)
			c.after = &after
		default:
			t.Fatalf("unexpected fixture file %s", f.Name)
		}
	}
	return cases
}

func TestAddExplicitTypeFixtures(t *testing.T) {
	fixturePath := filepath.Join("testdata", "add_explicit_type.txtar")
	ar, err := txtar.ParseFile(fixturePath)
	require.NoError(t, err)

	cases := readFixtures(t, ar)
	require.NotEmpty(t, cases)

	var updated []txtar.File
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.NotEmpty(t, c.before, "case %s has no before.rs", c.name)
			updated = append(updated, txtar.File{Name: c.name + "/before.rs", Data: []byte(c.before)})

			if *update {
				ctx, src := analyzedCtx(t, c.before)
				if a, ok := AddExplicitType(ctx); ok {
					result := applyWithCursor(t, a, src, ctx.Offset)
					updated = append(updated, txtar.File{Name: c.name + "/after.rs", Data: []byte(result)})
				}
				return
			}

			if c.after == nil {
				checkAssistNotApplicable(t, AddExplicitType, c.before)
				return
			}
			checkAssist(t, AddExplicitType, c.before, *c.after)
		})
	}

	if *update {
		ar.Files = updated
		if err := os.WriteFile(fixturePath, txtar.Format(ar), 0644); err != nil {
			t.Fatalf("failed to update fixtures: %v", err)
		}
	}
}
