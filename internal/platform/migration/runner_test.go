// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestConvertToPgx5DSN checks scheme rewriting for golang-migrate.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@localhost:5432/myflix", "pgx5://u:p@localhost:5432/myflix"},
		{"postgresql://u:p@localhost/myflix?sslmode=disable", "pgx5://u:p@localhost/myflix?sslmode=disable"},
		{"pgx5://u:p@localhost/myflix", "pgx5://u:p@localhost/myflix"},
		{"host=localhost dbname=myflix", "host=localhost dbname=myflix"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.dsn))
		})
	}
}

/*
TestEmbeddedSource checks that the schema is compiled into the binary.
*/
func TestEmbeddedSource(t *testing.T) {
	driver, err := embeddedSource()
	require.NoError(t, err)
	defer driver.Close()

	first, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := driver.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init", identifier)

	schema, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(schema), "users.favorite")
	assert.Contains(t, string(schema), "ON DELETE CASCADE")
}
