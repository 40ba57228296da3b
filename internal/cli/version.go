package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/NRJ900/Quest-Passer/internal/buildinfo"
	"github.com/NRJ900/Quest-Passer/internal/updater"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s (%s)\n", styleBrand.Render("Quest Passer"), styleVersion.Render(buildinfo.Version), buildinfo.Codename)
		fmt.Println(labelLine("Commit", buildinfo.CommitHash))
		fmt.Println(labelLine("Built", buildinfo.BuildDate))
		fmt.Println(labelLine("OS/Arch", runtime.GOOS+"/"+runtime.GOARCH))
		fmt.Println(labelLine("Go", runtime.Version()))

		if !versionCheck {
			return nil
		}

		result, err := updater.NewChecker().Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if !result.Available {
			fmt.Println(styleSuccess.Render("Up to date."))
			return nil
		}
		fmt.Println(styleUpdate.Render(fmt.Sprintf("Update available: v%s → v%s", result.CurrentVersion, result.LatestVersion)))
		if result.ReleaseURL != "" {
			fmt.Println(styleHint.Render(result.ReleaseURL))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}
