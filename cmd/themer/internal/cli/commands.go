package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BrandonKowalski/themer/pkg/themer"
	"github.com/BrandonKowalski/themer/pkg/themer/apply"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/fonts"
	"github.com/BrandonKowalski/themer/pkg/themer/platform/cannoli"
	"github.com/BrandonKowalski/themer/pkg/themer/style"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/spf13/cobra"
)

func (app *App) addInitCommand(rootCmd *cobra.Command) {
	var (
		force    bool
		platform string
		accent   uint32
		fontPath string
	)

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a theme file with the default element styles",
		Long:  "Write a theme file with the default element styles. The format follows the extension: .json, .toml or .msgpack.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return err
			}

			t := theme.FromElements(app.Config.GetString("style"), app.Registry.Discover())
			switch strings.ToLower(platform) {
			case "":
			case "cannoli":
				if fontPath == "" {
					fontPath = cannoli.DefaultFontPath
				}
				cannoli.Palette(fontPath).WithAccent(accent).Apply(t)
			default:
				return fmt.Errorf("unknown platform %q", platform)
			}

			if err := theme.Save(t, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d elements\n", path, t.Len())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&platform, "platform", "", "Recolor the defaults for a firmware (cannoli)")
	cmd.Flags().Uint32Var(&accent, "accent", 0, "Accent color as 0xRRGGBB, overriding the platform's")
	cmd.Flags().StringVar(&fontPath, "font", "", "UI font path for the platform palette")

	rootCmd.AddCommand(cmd)
}

func (app *App) addShowCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "show <file>",
		Short: "Print a theme file's elements and values",
		Long:  "Print a theme file's elements and values, merged with defaults for elements the file lacks. Missing files are created.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, result, err := app.loader().Load(args[0])
			if err != nil {
				return err
			}
			renderTheme(cmd.OutOrStdout(), t, result)
			return nil
		},
	})
}

func (app *App) addApplyCommand(rootCmd *cobra.Command) {
	var (
		useTTF    bool
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a theme to an in-memory style store and print the result",
		Long:  "Apply a theme to an in-memory style store and print the result. With --ttf, theme fonts are opened with SDL_ttf the way a running toolkit would.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var converter fonts.Converter = fonts.Passthrough
			if useTTF {
				if err := fonts.Init(); err != nil {
					return fmt.Errorf("initialize SDL_ttf: %w", err)
				}
				defer fonts.Quit()

				ttfConverter := fonts.NewTTFConverter(cacheSize)
				defer ttfConverter.Close()
				converter = ttfConverter
			}

			styles := style.NewRegistry()
			tm := themer.New(themer.Options{
				Styles:           styles,
				Fonts:            converter,
				Registry:         app.Registry,
				DefaultThemeName: app.Config.GetString("style"),
				Logger:           themer.GetInternalLogger(),
			})
			if err := tm.SetTheme(args[0]); err != nil {
				return err
			}
			renderStyles(cmd.OutOrStdout(), styles)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useTTF, "ttf", false, "Open theme fonts with SDL_ttf")
	cmd.Flags().IntVar(&cacheSize, "font-cache", 8, "Number of recently used fonts to keep cached")

	rootCmd.AddCommand(cmd)
}

func (app *App) addVariantsCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "variants",
		Short: "List the themeable element variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.FromElements(app.Config.GetString("style"), app.Registry.Discover())
			out := cmd.OutOrStdout()
			for _, key := range t.Keys() {
				el := t.Elements[key]
				fmt.Fprintf(out, "%-14s %-28s %d fields\n",
					key, apply.ResolveScope(el, t.Name).String(), len(element.FieldsOf(el)))
			}
			return nil
		},
	})
}
