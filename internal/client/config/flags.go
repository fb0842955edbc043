package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/docshare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN of the metadata store
//	-s string   S3 endpoint URL
//	-b string   S3 bucket name
//	-f string   path of the local follow-up database
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-b", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.MetadataDSN, "d", cfg.MetadataDSN, "metadata store DSN")
	fs.StringVar(&cfg.S3Endpoint, "s", cfg.S3Endpoint, "object store endpoint")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "object store bucket")
	fs.StringVar(&cfg.LocalDBFile, "f", cfg.LocalDBFile, "local follow-up database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
