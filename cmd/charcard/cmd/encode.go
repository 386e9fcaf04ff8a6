package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/ssargent/charcard/pkg/card"
	"gopkg.in/yaml.v3"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Embed a profile into an image",
	Long: `Write a copy of a base image with a character profile embedded in front
of its IEND chunk. The profile comes from a JSON or YAML file in either the
nested chara_card_v2 shape or the flat shape, or is built from settings flags.
Any profile already present in the base image is kept.

Example:
  charcard encode --base canvas.png --profile aria.json
  charcard encode --base canvas.png --name Aria --persona "A wandering bard." --out aria.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath, _ := cmd.Flags().GetString("base")
		profilePath, _ := cmd.Flags().GetString("profile")
		outPath, _ := cmd.Flags().GetString("out")

		var (
			profile *card.Profile
			err     error
		)
		if profilePath != "" {
			profile, err = loadProfile(profilePath)
			if err != nil {
				return err
			}
		} else {
			s := card.Settings{}
			s.Name, _ = cmd.Flags().GetString("name")
			s.Persona, _ = cmd.Flags().GetString("persona")
			s.SystemPrompt, _ = cmd.Flags().GetString("system-prompt")
			profile = card.ProfileFromSettings(s, cfg.Export.Options())
		}

		base, err := readImage(basePath)
		if err != nil {
			return err
		}

		out, err := cardCodec().EncodeProfileInto(base, profile)
		if err != nil {
			return err
		}

		if outPath == "" {
			outPath = filepath.Join(filepath.Dir(basePath), card.ExportFilename(profile.Data.Name))
		}
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}

		logger.WithField("file", outPath).WithField("bytes", len(out)).Debug("card written")
		cmd.Printf("Wrote %s (%d bytes)\n", outPath, len(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().String("base", "", "Base PNG image (required)")
	encodeCmd.Flags().String("profile", "", "Profile document (.json, .yaml or .yml)")
	encodeCmd.Flags().String("name", "", "Character name when building from settings")
	encodeCmd.Flags().String("persona", "", "Character persona when building from settings")
	encodeCmd.Flags().String("system-prompt", "", "System prompt when building from settings")
	encodeCmd.Flags().StringP("out", "o", "", "Output file (defaults to <name>_card.png next to the base image)")
	encodeCmd.MarkFlagsMutuallyExclusive("profile", "name")
	encodeCmd.MarkFlagsMutuallyExclusive("profile", "persona")
	encodeCmd.MarkFlagsMutuallyExclusive("profile", "system-prompt")
	if err := encodeCmd.MarkFlagRequired("base"); err != nil {
		panic(err)
	}
}

// loadProfile reads a profile document. YAML documents are converted to JSON
// so both shapes are recognised the same way.
func loadProfile(path string) (*card.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
		}
		if doc == nil {
			return nil, errors.New("profile document is empty")
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert profile %s: %w", path, err)
		}
	}

	profile, err := card.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	if !profile.IsV2() {
		profile.Spec = card.SpecName
		profile.SpecVersion = card.SpecVersion
	}
	return profile, nil
}
