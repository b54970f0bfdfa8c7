package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "set-role", "create-admin"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSetRoleCmd_RejectsUnknownRole(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"set-role", "ravi@example.com", "superuser"})

	err := root.Execute()
	assert.EqualError(t, err, `unknown role "superuser"`)
}

func TestSetRoleCmd_RequiresTwoArgs(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"set-role", "ravi@example.com"})

	assert.Error(t, root.Execute())
}

func TestCreateAdminCmd_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"create-admin", "--name", "Root"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"email" not set`)
}

func TestMigrateCmd_UnreachableDatabase(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "--log-level", "fatal",
		"--database-uri", "host=127.0.0.1 port=1 user=pustak dbname=pustak sslmode=disable connect_timeout=1"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to database")
}

func TestConnect_ReturnsNoSessionOnError(t *testing.T) {
	opts := &options{
		databaseURI: "host=127.0.0.1 port=1 user=pustak dbname=pustak sslmode=disable connect_timeout=1",
		logLevel:    "fatal",
	}

	sess, err := opts.connect()
	require.Error(t, err)
	assert.Nil(t, sess)

	opts.logLevel = "loud"
	sess, err = opts.connect()
	assert.ErrorContains(t, err, "create logger")
	assert.Nil(t, sess)
}
