package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
	"github.com/Mr-Dark-debug/catfacts/internal/display"
	"github.com/Mr-Dark-debug/catfacts/internal/tui"
	"github.com/Mr-Dark-debug/catfacts/internal/view"
	"github.com/Mr-Dark-debug/catfacts/pkg/timeutil"
)

// newSnapshotCmd prints one settled frame of the page and exits.
func newSnapshotCmd(flags *pageFlags) *cobra.Command {
	var (
		tabName string
		image   int
		width   int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one frame of the page",
		Example: `  catfacts snapshot --tab breeds
  catfacts snapshot --tab care --image 3 --width 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *flags)
			if err != nil {
				return err
			}

			tab, err := display.ParseTab(tabName)
			if err != nil {
				return err
			}

			content := catalog.Default()
			if err := catalog.Validate(content); err != nil {
				return fmt.Errorf("validating content: %w", err)
			}
			if image < 1 || image > len(content.Images) {
				return fmt.Errorf("image %d out of range 1..%d", image, len(content.Images))
			}

			state := display.NewState(len(content.Images))
			state.SetActiveTab(tab)
			for i := 1; i < image; i++ {
				state.AdvanceImage()
			}

			out := tui.Paint(view.Build(state, content), width, tui.Settled())
			footer := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(
				"image %d of %d, rotating every %s",
				state.ImageIndex()+1, state.ImageCount(),
				timeutil.FormatInterval(cfg.Carousel.Interval)))

			fmt.Fprintln(cmd.OutOrStdout(), out)
			fmt.Fprintln(cmd.OutOrStdout(), footer)
			return nil
		},
	}

	cmd.Flags().StringVar(&tabName, "tab", display.TabOverview.String(), "panel to show: overview, breeds or care")
	cmd.Flags().IntVar(&image, "image", 1, "hero image to show, 1-based")
	cmd.Flags().IntVar(&width, "width", 80, "output width in columns")
	return cmd
}
