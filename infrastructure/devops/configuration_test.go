package devops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabases(t *testing.T) {
	value := `
- name: HRMS
  host: db.internal
  username: hr
  password: secret
- name: reports
  host: pg.internal:6543
  username: ro
  password: pw
`
	entries, err := ParseDatabases(value)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "hr:secret@tcp(db.internal:3306)/hrms?parseTime=true&loc=UTC", entries["hrms"].DSN("mysql", "hrms"))
	assert.Equal(t, "host=pg.internal port=6543 user=ro password=pw dbname=hrms sslmode=require TimeZone=UTC", entries["reports"].DSN("postgres", "hrms"))
}

func TestParseDatabasesInvalid(t *testing.T) {
	_, err := ParseDatabases("name: [")
	assert.Error(t, err)
}
