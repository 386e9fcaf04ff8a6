package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/ssargent/charcard/pkg/card"
	"github.com/ssargent/charcard/pkg/codec"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	formatTable    = "table"
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatSettings = "settings"
)

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeYAML writes v as a YAML document
func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// writeStructured writes v in a machine readable format
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		return writeJSON(w, v)
	case formatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// chunkRow is one line of the inspect output
type chunkRow struct {
	Offset   int    `json:"offset" yaml:"offset"`
	Type     string `json:"type" yaml:"type"`
	Length   uint32 `json:"length" yaml:"length"`
	CRC      string `json:"crc" yaml:"crc"`
	CRCValid bool   `json:"crc_valid" yaml:"crc_valid"`
	Keyword  string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
}

func chunkRows(chunks []codec.Chunk) []chunkRow {
	rows := make([]chunkRow, 0, len(chunks))
	for _, c := range chunks {
		row := chunkRow{
			Offset:   c.Offset,
			Type:     c.Type,
			Length:   c.Length,
			CRC:      fmt.Sprintf("%08x", c.CRC),
			CRCValid: c.Validate() == nil,
		}
		if rec, ok := c.TextRecord(); ok {
			row.Keyword = rec.Keyword
		}
		rows = append(rows, row)
	}
	return rows
}

// outputChunksTable displays chunks in table format
func outputChunksTable(w io.Writer, rows []chunkRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No chunks found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "OFFSET\tTYPE\tLENGTH\tCRC\tVALID\tKEYWORD")
	for _, row := range rows {
		valid := "yes"
		if !row.CRCValid {
			valid = "NO"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			row.Offset,
			row.Type,
			row.Length,
			row.CRC,
			valid,
			row.Keyword)
	}

	return tw.Flush()
}

// outputSettings displays the settings view of a profile
func outputSettings(w io.Writer, s card.Settings) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Persona:\t%s\n", indentContinuation(s.Persona))
	fmt.Fprintf(tw, "System prompt:\t%s\n", indentContinuation(s.SystemPrompt))

	return tw.Flush()
}

// indentContinuation keeps multi-line values under their label
func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n\t")
}
