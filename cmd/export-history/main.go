// Command export-history archives the contents of a slack workspace
// (channels, users and message history) into a directory or a zip file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	slackexport "github.com/proelbtn/slack-export-viewer"
	"github.com/proelbtn/slack-export-viewer/fsadapter"
	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

const (
	slackTokenEnv    = "SLACK_TOKEN"
	downloadTokenEnv = "SLACK_FILE_TOKEN"
	destinationEnv   = "BASE_LOC"
)

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	token         string
	downloadToken string
	destination   string

	printVersion bool
	verbose      bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		slog.Error("invalid parameters", "error", err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}
	initLog(p.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, p); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

// run executes the export with the given parameters.
func run(ctx context.Context, p params) error {
	fsa, err := fsadapter.New(p.destination)
	if err != nil {
		return fmt.Errorf("destination %q: %w", p.destination, err)
	}
	defer fsa.Close()

	cl := slackapi.New(p.token)
	sess := slackexport.New(cl, fsa,
		slackexport.WithLogger(slog.Default()),
		slackexport.WithDownloadToken(p.downloadToken),
	)
	return sess.Run(ctx)
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			flag.CommandLine.Output(),
			"export-history, %s\n"+
				"Archives the channels, users and message history of a slack workspace\n"+
				"as partitioned JSON files, for offline backup or migration.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.token, "token", osenv.Secret(slackTokenEnv, ""), "slack `API_token` of the exporting bot or user (environment: "+slackTokenEnv+")")
	fs.StringVar(&p.downloadToken, "download-token", osenv.Secret(downloadTokenEnv, ""), "optional `token` appended to exported image thumbnail URLs for\nasset downloads (environment: "+downloadTokenEnv+")")
	fs.StringVar(&p.destination, "o", osenv.Value(destinationEnv, "slack-export"), "output `destination`: a directory, or a zip file if the name ends\nin .zip (environment: "+destinationEnv+")")
	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, p.validate()
}

func (p *params) validate() error {
	if p.printVersion {
		return nil
	}
	if p.token == "" {
		return errors.New("token is required (flag -token or environment " + slackTokenEnv + ")")
	}
	if p.destination == "" {
		return errors.New("destination is required")
	}
	return nil
}

// initLog initialises the default logger.
func initLog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}
