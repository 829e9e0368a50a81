package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/volarydns/volary-ddns/internal/config"
	"github.com/volarydns/volary-ddns/internal/healthchecksio"
	"github.com/volarydns/volary-ddns/internal/lock"
	"github.com/volarydns/volary-ddns/internal/logfile"
	"github.com/volarydns/volary-ddns/internal/models"
	"github.com/volarydns/volary-ddns/internal/persistence"
	"github.com/volarydns/volary-ddns/internal/shoutrrr"
	"github.com/volarydns/volary-ddns/internal/updater"
	"github.com/volarydns/volary-ddns/pkg/publicip"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	go func() {
		<-ctx.Done()
		stop() // a second signal kills the process
	}()

	err := <-errorCh
	close(errorCh)
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, context.Canceled):
		logger.Warn("Script interrupted by user")
		const interruptExitCode = 130 // 128 + SIGINT
		os.Exit(interruptExitCode)
	default:
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	fileLock, err := lock.Acquire(*config.Paths.LockFile)
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyLocked) {
			return fmt.Errorf("%w: another instance is already running", err)
		}
		return fmt.Errorf("acquiring lock file: %w", err)
	}
	defer func() {
		releaseErr := fileLock.Release()
		if releaseErr != nil {
			logger.Error("releasing lock file: " + releaseErr.Error())
		}
	}()

	fileLogger, err := logfile.New(logfile.Settings{
		Path:    *config.Paths.LogFile,
		MaxSize: config.Paths.LogMaxSize,
	})
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() {
		closeErr := fileLogger.Close()
		if closeErr != nil {
			logger.Error("closing log file: " + closeErr.Error())
		}
	}()

	// every run log line goes to both the console and the log file
	runLogger := logfile.NewTee(logger, fileLogger)

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	httpClient := &http.Client{Timeout: config.Client.Timeout}
	defer httpClient.CloseIdleConnections()

	hioClient := healthchecksio.New(httpClient,
		config.Health.HealthchecksioBaseURL, *config.Health.HealthchecksioUUID)
	pingHealthchecksio(ctx, hioClient, logger, healthchecksio.Start)

	ipFetcher, err := publicip.NewFetcher(
		publicip.DNSSettings{
			Enabled: *config.PubIP.DNSEnabled,
			Options: config.PubIP.ToDNSOptions(),
		},
		publicip.HTTPSettings{
			Enabled: *config.PubIP.HTTPEnabled,
			Client:  httpClient,
			Options: config.PubIP.ToHTTPOptions(),
		})
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	runner := updater.New(updater.Settings{
		Fetcher:   ipFetcher,
		Client:    updater.NewClient(httpClient, config.Update, runLogger),
		Store:     persistence.NewStore(*config.Paths.LastIPFile),
		Notifier:  shoutrrrClient,
		Logger:    runLogger,
		Attempts:  *config.PubIP.Attempts,
		RetryWait: config.PubIP.RetryWait,
	})

	runLogger.Info("Starting VolaryDDNS update check")
	err = runner.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			runLogger.Warn("Script interrupted by user")
			return err
		}
		pingHealthchecksio(ctx, hioClient, logger, healthchecksio.Exit1)
		return err
	}

	pingHealthchecksio(ctx, hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "volarydns",
		Repository: "volary-ddns",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func pingHealthchecksio(ctx context.Context, client *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	err := client.Ping(ctx, state)
	if err != nil {
		logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}
