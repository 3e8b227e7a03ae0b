// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/session"
)

// NewRootFlags returns the flags available to every command. path is the
// config file consulted after the environment.
func NewRootFlags(path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "base URL of the Curvenote API",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CURVENOTE_API_URL"),
				yaml.YAML("api_url", altsrc.StringSourcer(path)),
			),
			Value: session.DefaultAPIURL,
			Validator: func(value string) error {
				return FlagValidators(value, URLValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "log debug output to stderr",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CURVENOTE_DEBUG"),
			),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "site-url",
			Usage: "base URL of the Curvenote site",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CURVENOTE_SITE_URL"),
				yaml.YAML("site_url", altsrc.StringSourcer(path)),
			),
			Value: session.DefaultSiteURL,
			Validator: func(value string) error {
				return FlagValidators(value, URLValidator)
			},
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "API token, or - to read it from stdin",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CURVENOTE_TOKEN"),
				yaml.YAML("token", altsrc.StringSourcer(path)),
			),
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "curvenote version info",
			HideDefault: true,
		},
	}
}

// NewOutputFlags returns the flags of commands that print entities. ns is
// the command name, used to namespace config file lookups.
func NewOutputFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".attrs", altsrc.StringSourcer(path)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".filter", altsrc.StringSourcer(path)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, FilterValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
	}
}
