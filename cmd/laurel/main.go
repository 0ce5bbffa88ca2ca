// Command laurel segments classical-language prose into sentences.
// It provides commands for segmenting corpora, managing abbreviation
// stores, extracting text from XML documents, and serving the API.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/LaurelLatin/core/abbrev"
	"github.com/FocuswithJustin/LaurelLatin/core/cts"
	"github.com/FocuswithJustin/LaurelLatin/core/markup"
	"github.com/FocuswithJustin/LaurelLatin/core/segment"
	"github.com/FocuswithJustin/LaurelLatin/internal/fileutil"
	"github.com/FocuswithJustin/LaurelLatin/internal/logging"
	"github.com/FocuswithJustin/LaurelLatin/internal/server"
)

const version = "0.1.0"

// CLI defines the command-line interface for laurel.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	Segment SegmentCmd  `cmd:"" help:"Segment text into sentences"`
	Abbrev  AbbrevGroup `cmd:"" help:"Abbreviation store operations"`
	Extract ExtractCmd  `cmd:"" help:"Extract text nodes from an XML document"`
	Serve   ServeCmd    `cmd:"" help:"Start the REST/WebSocket API server"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// SegmentCmd segments a corpus file or literal text.
type SegmentCmd struct {
	Path string `arg:"" optional:"" default:"-" help:"Corpus file (.txt, .xz, .gz), or - for stdin"`
	Text string `help:"Segment this literal text instead of reading a file"`

	XML             bool   `help:"Input contains embedded XML markup"`
	NewlineBoundary int    `name:"newline-boundary" default:"2" help:"Newline run length treated as a boundary"`
	Semicolon       bool   `help:"Treat semicolons as sentence closers"`
	NoIndex         bool   `name:"no-index" help:"Do not assign sentence ids"`
	XPath           string `help:"Extract text nodes with this XPath before segmenting (implies XML input)"`
	URN             string `help:"CTS URN of the passage; adds a citation per sentence"`
	DB              string `help:"SQLite abbreviation store merged with the builtin set" type:"path"`
	JSON            bool   `help:"Emit sentences as JSON"`
}

// sentenceOutput is one sentence in the command's JSON output.
type sentenceOutput struct {
	Text string `json:"text"`
	ID   int    `json:"id,omitempty"`
	URN  string `json:"urn,omitempty"`
}

func (c *SegmentCmd) Run() error {
	text := c.Text
	if text == "" {
		data, err := fileutil.ReadCorpus(c.Path)
		if err != nil {
			return err
		}
		text = string(data)
	}

	if c.XPath != "" {
		parts, err := markup.ExtractText([]byte(text), c.XPath)
		if err != nil {
			return err
		}
		text = strings.Join(parts, "\n\n")
		// Extraction strips the markup, so scan the result as plain text.
		c.XML = false
	}

	opts := segment.Options{
		Indexing:           !c.NoIndex,
		NewlineBoundary:    c.NewlineBoundary,
		SemicolonDelimiter: c.Semicolon,
		XML:                c.XML,
	}

	sg := segment.Segmenter{Logger: logging.SentenceRecorder{}}
	if c.DB != "" {
		store, err := abbrev.OpenStore(c.DB)
		if err != nil {
			return err
		}
		defer store.Close()
		stored, err := store.Load()
		if err != nil {
			return err
		}
		sg.Abbreviations = abbrev.Merge(abbrev.Latin(), stored)
	}

	var base *cts.URN
	if c.URN != "" {
		parsed, err := cts.Parse(c.URN)
		if err != nil {
			return err
		}
		base = parsed
	}

	sentences, err := sg.Segment(text, opts)
	if err != nil {
		return err
	}

	out := make([]sentenceOutput, 0, len(sentences))
	for _, s := range sentences {
		so := sentenceOutput{Text: s.Text, ID: s.ID}
		if base != nil && s.ID > 0 {
			cited, err := base.PassageFor(s.ID)
			if err != nil {
				return err
			}
			so.URN = cited.String()
		}
		out = append(out, so)
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, so := range out {
		switch {
		case so.URN != "":
			fmt.Printf("%s\t%s\n", so.URN, so.Text)
		case so.ID > 0:
			fmt.Printf("%d\t%s\n", so.ID, so.Text)
		default:
			fmt.Println(so.Text)
		}
	}
	return nil
}

// AbbrevGroup contains abbreviation store operations.
type AbbrevGroup struct {
	List   AbbrevListCmd   `cmd:"" help:"List stored abbreviations"`
	Add    AbbrevAddCmd    `cmd:"" help:"Add or update an abbreviation"`
	Remove AbbrevRemoveCmd `cmd:"" help:"Remove an abbreviation"`
	Seed   AbbrevSeedCmd   `cmd:"" help:"Seed the store with the builtin Latin set"`
}

// AbbrevListCmd lists stored abbreviations.
type AbbrevListCmd struct {
	DB      string `default:"abbrev.db" help:"SQLite abbreviation store" type:"path"`
	Builtin bool   `help:"List the builtin Latin set instead of a store"`
}

func (c *AbbrevListCmd) Run() error {
	if c.Builtin {
		for _, a := range abbrev.Latin() {
			fmt.Println(a)
		}
		return nil
	}

	store, err := abbrev.OpenStore(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.Load()
	if err != nil {
		return err
	}
	for _, a := range list {
		fmt.Println(a)
	}
	return nil
}

// AbbrevAddCmd adds or updates an abbreviation.
type AbbrevAddCmd struct {
	Abbr string `arg:"" help:"Abbreviation literal, with or without trailing period"`
	Note string `help:"Optional note describing the abbreviation"`
	DB   string `default:"abbrev.db" help:"SQLite abbreviation store" type:"path"`
}

func (c *AbbrevAddCmd) Run() error {
	store, err := abbrev.OpenStore(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Put(c.Abbr, c.Note)
}

// AbbrevRemoveCmd removes an abbreviation.
type AbbrevRemoveCmd struct {
	Abbr string `arg:"" help:"Abbreviation literal to remove"`
	DB   string `default:"abbrev.db" help:"SQLite abbreviation store" type:"path"`
}

func (c *AbbrevRemoveCmd) Run() error {
	store, err := abbrev.OpenStore(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Remove(c.Abbr)
}

// AbbrevSeedCmd seeds a store with the builtin Latin set.
type AbbrevSeedCmd struct {
	DB string `default:"abbrev.db" help:"SQLite abbreviation store" type:"path"`
}

func (c *AbbrevSeedCmd) Run() error {
	store, err := abbrev.OpenStore(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Seed(abbrev.Latin()); err != nil {
		return err
	}
	logging.Info("abbreviation store seeded", "db", c.DB, "driver", abbrev.DriverType())
	return nil
}

// ExtractCmd extracts text nodes from an XML document.
type ExtractCmd struct {
	Path  string `arg:"" optional:"" default:"-" help:"XML file, or - for stdin"`
	XPath string `default:"/*" help:"XPath expression selecting the nodes to extract"`
	Check bool   `help:"Validate the document and report instead of extracting"`
}

func (c *ExtractCmd) Run() error {
	data, err := fileutil.ReadCorpus(c.Path)
	if err != nil {
		return err
	}

	if c.Check {
		result := markup.Validate(data)
		if !result.Valid {
			return fmt.Errorf("invalid XML: %s", result.Errors[0].Message)
		}
		fmt.Println("valid")
		return nil
	}

	parts, err := markup.ExtractText(data, c.XPath)
	if err != nil {
		return err
	}
	for _, p := range parts {
		fmt.Println(p)
	}
	return nil
}

// ServeCmd starts the API server.
type ServeCmd struct {
	Port      int `default:"8083" help:"HTTP server port"`
	CacheSize int `name:"cache-size" default:"256" help:"Maximum cached segmentation results"`
}

func (c *ServeCmd) Run() error {
	return server.Start(server.Config{
		Port:      c.Port,
		CacheSize: c.CacheSize,
	})
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("laurel version %s (sqlite driver: %s)\n", version, abbrev.DriverType())
	return nil
}

func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}

	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("laurel"),
		kong.Description("LaurelLatin - sentence segmentation for classical texts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
