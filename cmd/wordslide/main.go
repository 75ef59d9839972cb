package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/etree"
	"github.com/fwojciec/wordslide/fs"
	wshttp "github.com/fwojciec/wordslide/http"
	"github.com/fwojciec/wordslide/ppt"
	"github.com/fwojciec/wordslide/site"
	wsslog "github.com/fwojciec/wordslide/slog"
	"github.com/fwojciec/wordslide/sqlite"
	"github.com/fwojciec/wordslide/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Delimiter-table overrides file. Set before calling Run().
	SitesPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SlideSetService wordslide.SlideSetService
	Fetcher         wordslide.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		SitesPath: os.Getenv("WORDSLIDE_SITES"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordslide"),
		kong.Description("Import hymn lyrics into slide sets."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordslide --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sitesPath := m.SitesPath
	if cli.SitesFile != "" {
		sitesPath = cli.SitesFile
	}
	deps.Sites, err = yaml.LoadSites(sitesPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check the file named by WORDSLIDE_SITES or --sites-file")
		return err
	}

	defer m.Close()

	if needsLibrary(kongCtx.Command(), cli) {
		if m.SlideSetService == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set WORDSLIDE_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			m.SlideSetService = sqlite.NewSlideSetService(m.DB)
		}
		deps.SlideSets = m.SlideSetService
	}

	if strings.HasPrefix(kongCtx.Command(), "import ") {
		if m.Fetcher == nil {
			m.Fetcher = wshttp.NewFetcher(
				wshttp.WithTimeout(cli.Import.Timeout),
				wshttp.WithRateLimit(cli.Import.RateLimit),
			)
		}
		fetcher := wsslog.NewLoggingFetcher(m.Fetcher, deps.Logger)

		deps.Importers = make(map[wordslide.Source]wordslide.Importer, len(deps.Sites)+1)
		for source, table := range deps.Sites {
			deps.Importers[source] = wsslog.NewLoggingImporter(site.NewImporter(fetcher, table), source, deps.Logger)
		}
		deps.Importers[wordslide.SourceLegacy] = wsslog.NewLoggingImporter(ppt.NewImporter(), wordslide.SourceLegacy, deps.Logger)
		deps.NewWriter = newWriter
	}

	return kongCtx.Run(deps)
}

// needsLibrary reports whether the parsed command touches the slide-set
// library.
func needsLibrary(command string, cli *CLI) bool {
	switch command {
	case "list", "show <id>", "delete <id>":
		return true
	case "import <source> <query>":
		return cli.Import.Save
	}
	return false
}

// newWriter returns the exporter for format writing to path.
func newWriter(format, path string) (wordslide.SlideSetWriter, error) {
	switch format {
	case FormatText:
		return fs.NewWriter(path), nil
	case FormatXML:
		return etree.NewWriter(path), nil
	}
	return nil, wordslide.Errorf(wordslide.EINVALID, "unknown format %q", format)
}

func defaultDBPath() string {
	if path := os.Getenv("WORDSLIDE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordslide.db"
	}
	dir := filepath.Join(home, ".wordslide")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wordslide.db")
}
