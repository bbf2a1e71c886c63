package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestJoinActivityCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "collegium",
		Commands: []*cli.Command{
			{
				Name:   "join-activity",
				Action: joinActivityCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Required: true,
					},
				},
			},
		},
	}

	t.Run("missing db flag fails", func(t *testing.T) {
		err := app.Run([]string{"collegium", "join-activity", "1", "2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("missing arguments fail", func(t *testing.T) {
		err := app.Run([]string{"collegium", "join-activity", "--db", t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = parseID("abc")
	assert.Error(t, err)

	_, err = parseID("-1")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	run := func(level string) error {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String("log-level", level, "")
		ctx := cli.NewContext(&cli.App{}, set, nil)
		return setupLogger(ctx)
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
			assert.NoError(t, run(level), level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := run("verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
