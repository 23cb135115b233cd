package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arshubham/srtnr/internal/model"
	"github.com/arshubham/srtnr/internal/provider"
	"github.com/arshubham/srtnr/internal/shortener"
	"github.com/arshubham/srtnr/internal/urlinput"
)

var errNoURL = errors.New("no URL given and the clipboard holds none")

var shortenCmd = &cobra.Command{
	Use:   "shorten [url]",
	Short: "Shorten a URL",
	Long: `Shorten a URL with the selected provider and print the short URL.
Without an argument the URL is taken from the clipboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providerRef, _ := cmd.Flags().GetString("provider")
		copyResult, _ := cmd.Flags().GetBool("copy")
		useHTTPS, _ := cmd.Flags().GetBool("https")

		raw, err := inputURL(args)
		if err != nil {
			return err
		}

		registry := newRegistry()
		p, err := registry.Resolve(providerRef)
		if err != nil {
			return fmt.Errorf("%w: %q (see 'srtnr-cli providers')", err, providerRef)
		}

		fullURL, err := urlinput.NewNormalizer(useHTTPS).Normalize(raw)
		if err != nil {
			return err
		}

		req := model.NewShortenRequest(fullURL, p)
		result := shortener.Execute(cmd.Context(), newShortener(envCfg, logger), req, logger)
		if !result.OK() {
			return errors.New(result.Failure())
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.ShortURL())

		if copyResult {
			if err := writeClipboard(result.ShortURL()); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Short URL copied into clipboard.")
		}
		return nil
	},
}

// inputURL returns the argument or, when absent, a URL found on the clipboard
func inputURL(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	text, err := readClipboard()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errNoURL, err)
	}
	seed := urlinput.ClipboardSeed(text)
	if seed == "" {
		return "", errNoURL
	}
	return seed, nil
}

func init() {
	shortenCmd.Flags().StringP("provider", "p", string(provider.IsGd), "Provider ID, name or index")
	shortenCmd.Flags().BoolP("copy", "c", false, "Copy the short URL into the clipboard")
	shortenCmd.Flags().Bool("https", false, "Prefix addresses without a scheme with https:// instead of http://")
}
