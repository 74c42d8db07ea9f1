package migrations

import (
	"io/fs"
	"testing"

	"github.com/ryalynne/hrms/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOf(t *testing.T) {
	assert.Equal(t, "001", versionOf("001_init.sql"))
	assert.Equal(t, "002", versionOf("dir/002_add_index.sql"))
	assert.Equal(t, "noversion.sql", versionOf("noversion.sql"))
}

func TestEmbeddedSchema(t *testing.T) {
	content, err := fs.ReadFile(migrations.FS, "001_init.sql")
	require.NoError(t, err)

	schema := string(content)
	for _, table := range []string{"job_title", "employee_salary", "employee", "users"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, schema, "CONSTRAINT users_email_key UNIQUE (email)")
}
