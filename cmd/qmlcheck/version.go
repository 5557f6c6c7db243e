package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"qmlcheck/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show qmlcheck build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		showHash := versionShowHash || versionShowFull
		showDate := versionShowDate || versionShowFull

		info := versionInfo{
			Version:   strings.TrimSpace(version.Version),
			GitCommit: strings.TrimSpace(version.GitCommit),
			BuildDate: strings.TrimSpace(version.BuildDate),
		}
		if info.Version == "" {
			info.Version = "dev"
		}

		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), info, showHash, showDate)
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), info, showHash, showDate)
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(out io.Writer, info versionInfo, showHash, showDate bool) {
	fmt.Fprintf(out, "qmlcheck %s\n", info.Version)
	if showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, showHash, showDate bool) error {
	payload := versionPayload{
		Tool:    "qmlcheck",
		Version: info.Version,
	}
	if showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
