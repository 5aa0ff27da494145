package postgres

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrationsFromFS_Ok(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/migrations/0002_add_index.up.sql":      {Data: []byte("CREATE INDEX x ON orders (user_id);")},
		"sql/migrations/0002_add_index.down.sql":    {Data: []byte("DROP INDEX x;")},
		"sql/migrations/0001_create_orders.up.sql":  {Data: []byte("CREATE TABLE orders ();")},
		"sql/migrations/0001_create_orders.down.sql": {Data: []byte("DROP TABLE orders;")},
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[1].Version != 2 {
		t.Fatalf("expected sorted versions, got %d, %d", migrations[0].Version, migrations[1].Version)
	}
	if migrations[0].Name != "create_orders" {
		t.Fatalf("unexpected name: %s", migrations[0].Name)
	}
}

func TestLoadMigrationsFromFS_Errors(t *testing.T) {
	cases := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "missing down pair",
			fsys: fstest.MapFS{
				"sql/migrations/0001_create_orders.up.sql": {Data: []byte("CREATE TABLE orders ();")},
			},
		},
		{
			name: "invalid file name",
			fsys: fstest.MapFS{
				"sql/migrations/create_orders.sql": {Data: []byte("CREATE TABLE orders ();")},
			},
		},
		{
			name: "empty body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_create_orders.up.sql":   {Data: []byte("  ")},
				"sql/migrations/0001_create_orders.down.sql": {Data: []byte("DROP TABLE orders;")},
			},
		},
		{
			name: "name mismatch",
			fsys: fstest.MapFS{
				"sql/migrations/0001_create_orders.up.sql": {Data: []byte("CREATE TABLE orders ();")},
				"sql/migrations/0001_other_name.down.sql":  {Data: []byte("DROP TABLE orders;")},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadMigrationsFromFS(tc.fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEmbeddedMigrationsAreWellFormed(t *testing.T) {
	migrations, err := loadMigrationsFromFS(migrationsFS)
	if err != nil {
		t.Fatalf("embedded migrations are broken: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected at least one embedded migration")
	}
}
