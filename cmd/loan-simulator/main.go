package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/loan-simulator/internal/config"
	"github.com/iwvelando/loan-simulator/internal/logging"
	"github.com/iwvelando/loan-simulator/internal/simulation"
	"github.com/iwvelando/loan-simulator/pkg/constants"
	"github.com/iwvelando/loan-simulator/pkg/output"
	"go.uber.org/zap"
)

const (
	exitOK           = 0
	exitSetupFailed  = 1
	exitLoanRejected = 2
	directRunName    = "loan"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("loan-simulator", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	principal := flags.String("principal", "", "loan amount, e.g. 10.000,00 (skips the configuration file)")
	rate := flags.String("rate", "", "monthly interest rate in percent, e.g. 1,5")
	months := flags.String("months", "", "number of monthly installments")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return exitSetupFailed
	}

	direct := *principal != "" || *rate != "" || *months != ""

	conf := &config.Configuration{}
	if direct {
		conf.Simulations = []config.Simulation{{
			Name:      directRunName,
			Principal: *principal,
			Rate:      *rate,
			Months:    *months,
		}}
	} else {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return exitSetupFailed
		}
		conf = loaded
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return exitSetupFailed
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	formatName := conf.Output.Format
	if *outputFormatFlag != "" {
		formatName = *outputFormatFlag
	}

	outputFormat, err := output.ParseFormat(formatName)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return exitSetupFailed
	}

	if !direct {
		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}
	}

	outcomes := simulation.Run(logger, *conf)

	if err := output.Write(stdout, outputFormat, outcomes); err != nil {
		logger.Error("failed to write results",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return exitSetupFailed
	}

	for _, outcome := range outcomes {
		if outcome.Failed() {
			return exitLoanRejected
		}
	}
	return exitOK
}
