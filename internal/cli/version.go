package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/austenstone/project-update/internal/buildinfo"
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info, nil, nil)
			return nil
		}

		fmt.Printf("project-update %s\n", info.Version)
		if info.Commit != "" {
			fmt.Printf("  commit: %s\n", info.Commit)
		}
		if info.Date != "" {
			fmt.Printf("  built:  %s\n", info.Date)
		}
		fmt.Printf("  %s %s/%s\n", info.GoVersion, info.GOOS, info.GOARCH)
		return nil
	},
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:   buildinfo.Version,
		Commit:    buildinfo.Commit,
		Date:      buildinfo.Date,
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
	}

	// Fall back to module build info for go-installed binaries.
	if info.Version == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
	}
	if info.Version == "" {
		info.Version = "(devel)"
	}
	return info
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
