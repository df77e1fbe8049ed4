package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"galaxycheck/internal/config"
)

const (
	CallURLFlag  = "call-url"
	ContractFlag = "contract"
	TimeoutFlag  = "timeout"
	JSONFlag     = "json"
	PageFlag     = "page"
)

func main() {
	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	cfg.ApplyNetwork(yamlCfg)

	app := &cli.App{
		Name:  "galaxycheck",
		Usage: "Look up GalaxyMember tokens on VeChain",
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Aliases:   []string{"l"},
				Usage:     "Look up one or more token ids",
				ArgsUsage: "TOKEN...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    CallURLFlag,
						Usage:   "Contract call endpoint",
						Value:   cfg.CallURL,
						EnvVars: []string{"VECHAIN_CALL_URL"},
					},
					&cli.StringFlag{
						Name:    ContractFlag,
						Usage:   "GalaxyMember contract address",
						Value:   cfg.Contract,
						EnvVars: []string{"GALAXY_CONTRACT"},
					},
					&cli.DurationFlag{
						Name:  TimeoutFlag,
						Usage: "Timeout for each lookup",
						Value: cfg.LookupTimeout,
					},
					&cli.BoolFlag{
						Name:  JSONFlag,
						Usage: "Print results as JSON",
					},
				},
				Action: lookupAction,
			},
			{
				Name:      "share",
				Aliases:   []string{"s"},
				Usage:     "Print a shareable link for a token",
				ArgsUsage: "TOKEN",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  PageFlag,
						Usage: "Page URL the link points to",
						Value: cfg.BaseURL + "/",
					},
				},
				Action: shareAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
